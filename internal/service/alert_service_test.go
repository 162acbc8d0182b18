package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
)

func TestAlertService_Acknowledge(t *testing.T) {
	userRepo := NewMockUserRepository()
	alertRepo := NewMockAlertRepository()
	svc := NewAlertService(alertRepo, userRepo)

	caregiver := &domain.User{Name: "Jana", Role: domain.RoleCaregiver, Timezone: "UTC"}
	if err := userRepo.Create(context.Background(), caregiver); err != nil {
		t.Fatalf("failed to create caregiver: %v", err)
	}

	alert := &domain.Alert{DoseID: uuid.New()}
	if err := alertRepo.Create(context.Background(), alert); err != nil {
		t.Fatalf("failed to create alert: %v", err)
	}

	acked, err := svc.Acknowledge(context.Background(), alert.ID, caregiver.ID)
	if err != nil {
		t.Fatalf("Acknowledge() error = %v", err)
	}
	if acked.AckBy == nil || *acked.AckBy != caregiver.ID {
		t.Errorf("AckBy = %v, want %s", acked.AckBy, caregiver.ID)
	}
	if acked.AckAt == nil {
		t.Error("AckAt = nil, want a timestamp")
	}

	// Second acknowledgement conflicts.
	if _, err := svc.Acknowledge(context.Background(), alert.ID, caregiver.ID); !errors.Is(err, domain.ErrAlreadyAcked) {
		t.Errorf("second Acknowledge() error = %v, want ErrAlreadyAcked", err)
	}
}

func TestAlertService_Acknowledge_UnknownUser(t *testing.T) {
	alertRepo := NewMockAlertRepository()
	svc := NewAlertService(alertRepo, NewMockUserRepository())

	alert := &domain.Alert{DoseID: uuid.New()}
	if err := alertRepo.Create(context.Background(), alert); err != nil {
		t.Fatalf("failed to create alert: %v", err)
	}

	if _, err := svc.Acknowledge(context.Background(), alert.ID, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Acknowledge() error = %v, want ErrNotFound", err)
	}
}

func TestAlertService_Acknowledge_UnknownAlert(t *testing.T) {
	userRepo := NewMockUserRepository()
	caregiver := &domain.User{Name: "Jana", Role: domain.RoleCaregiver, Timezone: "UTC"}
	if err := userRepo.Create(context.Background(), caregiver); err != nil {
		t.Fatalf("failed to create caregiver: %v", err)
	}

	svc := NewAlertService(NewMockAlertRepository(), userRepo)
	if _, err := svc.Acknowledge(context.Background(), uuid.New(), caregiver.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Acknowledge() error = %v, want ErrNotFound", err)
	}
}
