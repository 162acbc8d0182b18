package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
)

// MockDoseService is a mock implementation of DoseService
type MockDoseService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateDoseRequest) (*domain.Dose, error)
	updateFunc func(ctx context.Context, userID, doseID uuid.UUID, req *domain.UpdateDoseRequest) (*domain.Dose, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) (*domain.DoseListResponse, error)
	nextFunc   func(ctx context.Context, userID uuid.UUID) (*domain.NextDoseResponse, error)
}

func (m *MockDoseService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDoseRequest) (*domain.Dose, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Dose{
		ID:           uuid.New(),
		UserID:       userID,
		MedicationID: req.MedicationID,
		ScheduledAt:  req.ScheduledAt,
		Status:       domain.DoseStatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

func (m *MockDoseService) Update(ctx context.Context, userID, doseID uuid.UUID, req *domain.UpdateDoseRequest) (*domain.Dose, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, doseID, req)
	}
	return &domain.Dose{
		ID:           doseID,
		UserID:       userID,
		MedicationID: uuid.New(),
		ScheduledAt:  time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		Status:       req.Status,
		CreatedAt:    time.Now(),
	}, nil
}

func (m *MockDoseService) List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) (*domain.DoseListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DoseListResponse{
		Data:       []domain.DoseResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockDoseService) Next(ctx context.Context, userID uuid.UUID) (*domain.NextDoseResponse, error) {
	if m.nextFunc != nil {
		return m.nextFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockMedicationService is a mock implementation of MedicationService
type MockMedicationService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateMedicationRequest) (*domain.Medication, error)
	listFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error)
	deleteFunc func(ctx context.Context, userID, medicationID uuid.UUID) error
}

func (m *MockMedicationService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMedicationRequest) (*domain.Medication, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Medication{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockMedicationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.Medication{}, nil
}

func (m *MockMedicationService) Delete(ctx context.Context, userID, medicationID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, medicationID)
	}
	return nil
}
