package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/repository"
)

type MedicationService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMedicationRequest) (*domain.Medication, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error)
	Delete(ctx context.Context, userID, medicationID uuid.UUID) error
}

type medicationService struct {
	repo     repository.MedicationRepository
	userRepo repository.UserRepository
}

func NewMedicationService(repo repository.MedicationRepository, userRepo repository.UserRepository) MedicationService {
	return &medicationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *medicationService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMedicationRequest) (*domain.Medication, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	med := &domain.Medication{
		UserID:       userID,
		Name:         req.Name,
		StrengthText: req.StrengthText,
		DoseText:     req.DoseText,
		Instructions: req.Instructions,
	}
	med.SetTimesList(req.Times)

	if err := s.repo.Create(ctx, med); err != nil {
		return nil, err
	}

	return med, nil
}

func (s *medicationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.ListByUser(ctx, userID)
}

func (s *medicationService) Delete(ctx context.Context, userID, medicationID uuid.UUID) error {
	med, err := s.repo.GetByID(ctx, medicationID)
	if err != nil {
		return err
	}

	// Verify ownership
	if med.UserID != userID {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, medicationID)
}
