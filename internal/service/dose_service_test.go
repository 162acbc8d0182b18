package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
)

type doseFixture struct {
	svc       DoseService
	doseRepo  *MockDoseRepository
	alertRepo *MockAlertRepository
	userID    uuid.UUID
	medID     uuid.UUID
}

func newDoseFixture(t *testing.T) *doseFixture {
	t.Helper()
	userRepo := NewMockUserRepository()
	medRepo := NewMockMedicationRepository()
	doseRepo := NewMockDoseRepository()
	alertRepo := NewMockAlertRepository()

	user := &domain.User{Name: "Rita", Role: domain.RolePatient, Timezone: "UTC"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	med := &domain.Medication{UserID: user.ID, Name: "Metformin"}
	if err := medRepo.Create(context.Background(), med); err != nil {
		t.Fatalf("failed to create medication: %v", err)
	}

	return &doseFixture{
		svc:       NewDoseService(doseRepo, medRepo, alertRepo, userRepo),
		doseRepo:  doseRepo,
		alertRepo: alertRepo,
		userID:    user.ID,
		medID:     med.ID,
	}
}

func TestDoseService_Create(t *testing.T) {
	fx := newDoseFixture(t)
	scheduledAt := time.Now().Add(2 * time.Hour)

	dose, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  scheduledAt,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if dose.Status != domain.DoseStatusPending {
		t.Errorf("Status = %q, want pending", dose.Status)
	}
	if !dose.ScheduledAt.Equal(scheduledAt.UTC()) {
		t.Errorf("ScheduledAt = %v, want %v (UTC)", dose.ScheduledAt, scheduledAt.UTC())
	}
	if dose.Medication.Name != "Metformin" {
		t.Errorf("Medication.Name = %q, want preloaded name", dose.Medication.Name)
	}
}

func TestDoseService_Create_RejectsForeignMedication(t *testing.T) {
	fx := newDoseFixture(t)

	_, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: uuid.New(),
		ScheduledAt:  time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound for unknown medication", err)
	}
}

func TestDoseService_Update_TakenSetsTakenAt(t *testing.T) {
	fx := newDoseFixture(t)

	dose, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := fx.svc.Update(context.Background(), fx.userID, dose.ID, &domain.UpdateDoseRequest{
		Status: domain.DoseStatusTaken,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.TakenAt == nil {
		t.Error("TakenAt = nil, want a timestamp for status=taken")
	}

	// Reverting to pending clears TakenAt.
	reverted, err := fx.svc.Update(context.Background(), fx.userID, dose.ID, &domain.UpdateDoseRequest{
		Status: domain.DoseStatusPending,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if reverted.TakenAt != nil {
		t.Errorf("TakenAt = %v, want nil after reverting", *reverted.TakenAt)
	}
}

func TestDoseService_Update_MissTransitionRaisesAlert(t *testing.T) {
	fx := newDoseFixture(t)

	dose, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := fx.svc.Update(context.Background(), fx.userID, dose.ID, &domain.UpdateDoseRequest{
		Status: domain.DoseStatusMissed,
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(fx.alertRepo.alerts) != 1 {
		t.Fatalf("alert count = %d, want 1 after miss transition", len(fx.alertRepo.alerts))
	}

	// Missed -> skipped stays inside the miss family: no second alert.
	if _, err := fx.svc.Update(context.Background(), fx.userID, dose.ID, &domain.UpdateDoseRequest{
		Status: domain.DoseStatusSkipped,
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(fx.alertRepo.alerts) != 1 {
		t.Errorf("alert count = %d, want still 1 (no repeat within miss family)", len(fx.alertRepo.alerts))
	}
}

func TestDoseService_Update_OwnershipEnforced(t *testing.T) {
	fx := newDoseFixture(t)

	dose, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = fx.svc.Update(context.Background(), uuid.New(), dose.ID, &domain.UpdateDoseRequest{
		Status: domain.DoseStatusTaken,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound for foreign user", err)
	}
}

func TestDoseService_List_Pagination(t *testing.T) {
	fx := newDoseFixture(t)
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		_, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
			MedicationID: fx.medID,
			ScheduledAt:  now.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page, err := fx.svc.List(context.Background(), fx.userID, domain.DoseFilter{Limit: 3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(page.Data) != 3 {
		t.Errorf("page size = %d, want 3", len(page.Data))
	}
	if !page.Pagination.HasMore {
		t.Error("HasMore = false, want true")
	}
	if page.Pagination.NextCursor == "" {
		t.Error("NextCursor empty, want a cursor")
	}
}

func TestDoseService_Next(t *testing.T) {
	fx := newDoseFixture(t)
	now := time.Now().UTC()

	later, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  now.Add(5 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	sooner, err := fx.svc.Create(context.Background(), fx.userID, &domain.CreateDoseRequest{
		MedicationID: fx.medID,
		ScheduledAt:  now.Add(1 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_ = later

	next, err := fx.svc.Next(context.Background(), fx.userID)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if next.DoseID != sooner.ID {
		t.Errorf("Next() = %s, want the earliest upcoming dose %s", next.DoseID, sooner.ID)
	}
}

func TestDoseService_Next_NoneUpcoming(t *testing.T) {
	fx := newDoseFixture(t)

	_, err := fx.svc.Next(context.Background(), fx.userID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Next() error = %v, want ErrNotFound", err)
	}
}
