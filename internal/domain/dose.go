package domain

import (
	"time"

	"github.com/google/uuid"
)

// DoseStatus is the lifecycle state of a scheduled dose.
// @Description Dose state: pending until acted on, then taken, skipped, snoozed, or missed.
type DoseStatus string

const (
	DoseStatusPending DoseStatus = "pending"
	DoseStatusTaken   DoseStatus = "taken"
	DoseStatusSkipped DoseStatus = "skipped"
	DoseStatusMissed  DoseStatus = "missed"
	DoseStatusSnoozed DoseStatus = "snoozed"
)

// IsMiss reports whether the status counts as a missed dose for
// adherence purposes (skipped and missed both do).
func (s DoseStatus) IsMiss() bool {
	return s == DoseStatusSkipped || s == DoseStatusMissed
}

type Dose struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_doses_user_scheduled" json:"user_id"`
	MedicationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"medication_id"`
	ScheduledAt  time.Time  `gorm:"not null;index:idx_doses_user_scheduled,sort:desc" json:"scheduled_at"`
	Status       DoseStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Notes        *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Medication Medication `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Dose) TableName() string {
	return "doses"
}

// CreateDoseRequest is the request body for scheduling a dose.
// @Description Request payload for scheduling a single dose of a medication.
type CreateDoseRequest struct {
	// Medication this dose belongs to
	MedicationID uuid.UUID `json:"medication_id" validate:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	// When the dose should be taken (RFC3339, UTC recommended)
	ScheduledAt time.Time `json:"scheduled_at" validate:"required" example:"2024-01-15T08:00:00Z"`
	// Optional notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// UpdateDoseRequest is the request body for recording the outcome of a dose.
// @Description Request payload for marking a dose taken, skipped, snoozed, or missed.
type UpdateDoseRequest struct {
	// New status
	Status DoseStatus `json:"status" validate:"required,oneof=pending taken skipped snoozed missed" example:"taken" enums:"pending,taken,skipped,snoozed,missed"`
	// When the dose was actually taken (only meaningful for status=taken)
	TakenAt *time.Time `json:"taken_at,omitempty" example:"2024-01-15T08:12:00Z"`
	// Optional notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// DoseResponse is the response body for dose endpoints.
type DoseResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	MedicationID   uuid.UUID  `json:"medication_id"`
	MedicationName string     `json:"medication_name,omitempty"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	Status         DoseStatus `json:"status"`
	TakenAt        *time.Time `json:"taken_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (d *Dose) ToResponse() DoseResponse {
	resp := DoseResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		MedicationID: d.MedicationID,
		ScheduledAt:  d.ScheduledAt,
		Status:       d.Status,
		TakenAt:      d.TakenAt,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
	if d.Medication.Name != "" {
		resp.MedicationName = d.Medication.Name
	}
	return resp
}

// DoseListResponse is the response body for listing doses.
// @Description Paginated list of doses.
type DoseListResponse struct {
	Data       []DoseResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DoseFilter contains filter parameters for listing doses
type DoseFilter struct {
	From   *time.Time
	To     *time.Time
	Status *DoseStatus
	Limit  int
	Cursor string
}

// NextDoseResponse is the response for the next-dose lookup.
type NextDoseResponse struct {
	DoseID         uuid.UUID `json:"dose_id"`
	MedicationID   uuid.UUID `json:"medication_id"`
	MedicationName string    `json:"medication_name,omitempty"`
	ScheduledAt    time.Time `json:"scheduled_at"`
}
