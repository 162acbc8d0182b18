package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/repository"
	"github.com/pillpal/pillpal-api/pkg/pagination"
)

type DoseService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDoseRequest) (*domain.Dose, error)
	Update(ctx context.Context, userID, doseID uuid.UUID, req *domain.UpdateDoseRequest) (*domain.Dose, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) (*domain.DoseListResponse, error)
	Next(ctx context.Context, userID uuid.UUID) (*domain.NextDoseResponse, error)
}

type doseService struct {
	repo      repository.DoseRepository
	medRepo   repository.MedicationRepository
	alertRepo repository.AlertRepository
	userRepo  repository.UserRepository
}

func NewDoseService(
	repo repository.DoseRepository,
	medRepo repository.MedicationRepository,
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
) DoseService {
	return &doseService{
		repo:      repo,
		medRepo:   medRepo,
		alertRepo: alertRepo,
		userRepo:  userRepo,
	}
}

func (s *doseService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDoseRequest) (*domain.Dose, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Medication must exist and belong to the user
	med, err := s.medRepo.GetByID(ctx, req.MedicationID)
	if err != nil {
		return nil, err
	}
	if med.UserID != userID {
		return nil, domain.ErrNotFound
	}

	dose := &domain.Dose{
		UserID:       userID,
		MedicationID: req.MedicationID,
		ScheduledAt:  req.ScheduledAt.UTC(),
		Status:       domain.DoseStatusPending,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, dose); err != nil {
		return nil, err
	}

	dose.Medication = *med
	return dose, nil
}

// Update records the outcome of a dose. Transitions into missed or
// skipped insert an alert row for the caregiver network; that alert is
// what caregivers later acknowledge.
func (s *doseService) Update(ctx context.Context, userID, doseID uuid.UUID, req *domain.UpdateDoseRequest) (*domain.Dose, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	dose, err := s.repo.GetByID(ctx, doseID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if dose.UserID != userID {
		return nil, domain.ErrNotFound
	}

	previous := dose.Status
	dose.Status = req.Status
	if req.Notes != nil {
		dose.Notes = req.Notes
	}

	switch req.Status {
	case domain.DoseStatusTaken:
		takenAt := time.Now().UTC()
		if req.TakenAt != nil {
			takenAt = req.TakenAt.UTC()
		}
		dose.TakenAt = &takenAt
	default:
		dose.TakenAt = nil
	}

	if err := s.repo.Update(ctx, dose); err != nil {
		return nil, err
	}

	if req.Status.IsMiss() && !previous.IsMiss() {
		alert := &domain.Alert{DoseID: dose.ID}
		if err := s.alertRepo.Create(ctx, alert); err != nil {
			// Alert delivery is best-effort; the dose update already landed.
			return dose, nil
		}
	}

	return dose, nil
}

func (s *doseService) List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) (*domain.DoseListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	doses, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(doses) > limit

	// Trim to actual limit
	if hasMore {
		doses = doses[:limit]
	}

	response := &domain.DoseListResponse{
		Data: make([]domain.DoseResponse, len(doses)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, dose := range doses {
		response.Data[i] = dose.ToResponse()
	}

	if hasMore && len(doses) > 0 {
		last := doses[len(doses)-1]
		cursor := &pagination.Cursor{
			ID:          last.ID,
			ScheduledAt: last.ScheduledAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *doseService) Next(ctx context.Context, userID uuid.UUID) (*domain.NextDoseResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	dose, err := s.repo.NextUpcoming(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &domain.NextDoseResponse{
		DoseID:         dose.ID,
		MedicationID:   dose.MedicationID,
		MedicationName: dose.Medication.Name,
		ScheduledAt:    dose.ScheduledAt,
	}, nil
}
