package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert is a missed-dose notification sent to the caregiver network.
// AckBy/AckAt are filled when a caregiver acknowledges it.
type Alert struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoseID uuid.UUID  `gorm:"type:uuid;not null;index" json:"dose_id"`
	SentAt time.Time  `gorm:"autoCreateTime" json:"sent_at"`
	AckBy  *uuid.UUID `gorm:"type:uuid" json:"ack_by,omitempty"`
	AckAt  *time.Time `gorm:"index" json:"ack_at,omitempty"`

	// Associations
	Dose Dose `gorm:"foreignKey:DoseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Alert) TableName() string {
	return "alerts"
}

// AckAlertRequest is the request body for acknowledging an alert.
type AckAlertRequest struct {
	// Acknowledging user (caregiver)
	AckBy uuid.UUID `json:"ack_by" validate:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
}

// AlertResponse is the response body for alert endpoints.
type AlertResponse struct {
	ID     uuid.UUID  `json:"id"`
	DoseID uuid.UUID  `json:"dose_id"`
	SentAt time.Time  `json:"sent_at"`
	AckBy  *uuid.UUID `json:"ack_by,omitempty"`
	AckAt  *time.Time `json:"ack_at,omitempty"`
}

func (a *Alert) ToResponse() AlertResponse {
	return AlertResponse{
		ID:     a.ID,
		DoseID: a.DoseID,
		SentAt: a.SentAt,
		AckBy:  a.AckBy,
		AckAt:  a.AckAt,
	}
}
