package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	StrengthText *string   `gorm:"type:text" json:"strength_text,omitempty"`
	DoseText     *string   `gorm:"type:text" json:"dose_text,omitempty"`
	Instructions *string   `gorm:"type:text" json:"instructions,omitempty"`
	// Scheduled times of day as comma-separated "HH:MM" values.
	Times     string    `gorm:"type:text;not null;default:''" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Medication) TableName() string {
	return "medications"
}

// TimesList splits the stored schedule into individual "HH:MM" entries.
func (m *Medication) TimesList() []string {
	if m.Times == "" {
		return nil
	}
	return strings.Split(m.Times, ",")
}

// SetTimesList stores the schedule entries back into the serialized column.
func (m *Medication) SetTimesList(times []string) {
	m.Times = strings.Join(times, ",")
}

// CreateMedicationRequest is the request body for adding a medication.
// @Description Request payload for registering a medication and its daily schedule.
type CreateMedicationRequest struct {
	// Medication name as printed on the label
	Name string `json:"name" validate:"required,max=255" example:"Metformin"`
	// Strength, e.g. "500mg"
	StrengthText *string `json:"strength_text,omitempty" validate:"omitempty,max=255" example:"500mg"`
	// Dose wording, e.g. "1 tablet"
	DoseText *string `json:"dose_text,omitempty" validate:"omitempty,max=255" example:"1 tablet"`
	// Free-form instructions
	Instructions *string `json:"instructions,omitempty" validate:"omitempty,max=1000" example:"Take with food"`
	// Daily schedule as HH:MM entries
	Times []string `json:"times" validate:"omitempty,dive,timeofday" example:"08:00,20:00"`
}

// MedicationResponse is the response body for medication endpoints.
type MedicationResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	StrengthText *string   `json:"strength_text,omitempty"`
	DoseText     *string   `json:"dose_text,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	Times        []string  `json:"times"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *Medication) ToResponse() MedicationResponse {
	times := m.TimesList()
	if times == nil {
		times = []string{}
	}
	return MedicationResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		StrengthText: m.StrengthText,
		DoseText:     m.DoseText,
		Instructions: m.Instructions,
		Times:        times,
		CreatedAt:    m.CreatedAt,
	}
}
