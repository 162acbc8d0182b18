package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	Acknowledge(ctx context.Context, id uuid.UUID, ackBy uuid.UUID, ackAt time.Time) (*domain.Alert, error)
	// CountAckedSince counts acknowledgements with ack_at >= since across
	// all users. System-wide on purpose: the original scorer was calibrated
	// against this unscoped count.
	CountAckedSince(ctx context.Context, since time.Time) (int, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) Acknowledge(ctx context.Context, id uuid.UUID, ackBy uuid.UUID, ackAt time.Time) (*domain.Alert, error) {
	alert, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert.AckAt != nil {
		return nil, domain.ErrAlreadyAcked
	}

	alert.AckBy = &ackBy
	alert.AckAt = &ackAt
	if err := r.db.WithContext(ctx).Save(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *alertRepository) CountAckedSince(ctx context.Context, since time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Alert{}).
		Where("ack_at IS NOT NULL AND ack_at >= ?", since).
		Count(&count).Error
	return int(count), err
}
