package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes who is using the account.
// @Description Account role: patient, caregiver, or clinician.
type UserRole string

const (
	RolePatient   UserRole = "patient"
	RoleCaregiver UserRole = "caregiver"
	RoleClinician UserRole = "clinician"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      UserRole  `gorm:"type:varchar(16);not null;default:'patient'" json:"role"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Phone     *string   `gorm:"type:varchar(32)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Name     string   `json:"name" validate:"required,max=255" example:"Rita Hayes"`
	Role     UserRole `json:"role" validate:"required,oneof=patient caregiver clinician" example:"patient" enums:"patient,caregiver,clinician"`
	Timezone string   `json:"timezone" validate:"omitempty,timezone" example:"Europe/Prague"`
	Phone    *string  `json:"phone,omitempty" validate:"omitempty,e164" example:"+420777123456"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Timezone  string    `json:"timezone"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		Timezone:  u.Timezone,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
