package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/pkg/pagination"
	"gorm.io/gorm"
)

type DoseRepository interface {
	Create(ctx context.Context, dose *domain.Dose) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dose, error)
	Update(ctx context.Context, dose *domain.Dose) error
	List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) ([]domain.Dose, error)
	// ListScheduledSince returns all doses with scheduled_at >= since,
	// with no upper bound (future-scheduled doses included).
	ListScheduledSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Dose, error)
	// ListScheduledBetween returns doses with scheduled_at in [from, to] inclusive.
	ListScheduledBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Dose, error)
	// NextUpcoming returns the earliest pending or snoozed dose at or after now.
	NextUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Dose, error)
}

type doseRepository struct {
	db *gorm.DB
}

func NewDoseRepository(db *gorm.DB) DoseRepository {
	return &doseRepository{db: db}
}

func (r *doseRepository) Create(ctx context.Context, dose *domain.Dose) error {
	return r.db.WithContext(ctx).Create(dose).Error
}

func (r *doseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dose, error) {
	var dose domain.Dose
	err := r.db.WithContext(ctx).Preload("Medication").First(&dose, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dose, nil
}

func (r *doseRepository) Update(ctx context.Context, dose *domain.Dose) error {
	return r.db.WithContext(ctx).Save(dose).Error
}

func (r *doseRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) ([]domain.Dose, error) {
	query := r.db.WithContext(ctx).
		Preload("Medication").
		Where("user_id = ?", userID).
		Order("scheduled_at DESC")

	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_at <= ?", filter.To)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly after the cursor position
			query = query.Where(
				"(scheduled_at < ?) OR (scheduled_at = ? AND id < ?)",
				cursor.ScheduledAt, cursor.ScheduledAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var doses []domain.Dose
	if err := query.Find(&doses).Error; err != nil {
		return nil, err
	}

	return doses, nil
}

func (r *doseRepository) ListScheduledSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Dose, error) {
	var doses []domain.Dose
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_at >= ?", userID, since).
		Order("scheduled_at ASC").
		Find(&doses).Error
	if err != nil {
		return nil, err
	}
	return doses, nil
}

func (r *doseRepository) ListScheduledBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Dose, error) {
	var doses []domain.Dose
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_at >= ? AND scheduled_at <= ?", userID, from, to).
		Order("scheduled_at ASC").
		Find(&doses).Error
	if err != nil {
		return nil, err
	}
	return doses, nil
}

func (r *doseRepository) NextUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Dose, error) {
	var dose domain.Dose
	err := r.db.WithContext(ctx).
		Preload("Medication").
		Where("user_id = ? AND status IN ? AND scheduled_at >= ?",
			userID, []domain.DoseStatus{domain.DoseStatusPending, domain.DoseStatusSnoozed}, now).
		Order("scheduled_at ASC").
		First(&dose).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dose, nil
}
