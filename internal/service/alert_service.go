package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/repository"
)

// AlertService handles caregiver acknowledgement of missed-dose alerts.
// Acknowledgements feed the caregiver_ack_7d risk feature.
type AlertService interface {
	Acknowledge(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error)
}

type alertService struct {
	repo     repository.AlertRepository
	userRepo repository.UserRepository
}

func NewAlertService(repo repository.AlertRepository, userRepo repository.UserRepository) AlertService {
	return &alertService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *alertService) Acknowledge(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error) {
	exists, err := s.userRepo.Exists(ctx, ackBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.Acknowledge(ctx, alertID, ackBy, time.Now().UTC())
}
