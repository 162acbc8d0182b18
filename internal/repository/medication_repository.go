package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(ctx context.Context, med *domain.Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error)
	// CountByUser counts the user's active medications (regimen complexity).
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(ctx context.Context, med *domain.Medication) error {
	return r.db.WithContext(ctx).Create(med).Error
}

func (r *medicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medication, error) {
	var med domain.Medication
	err := r.db.WithContext(ctx).First(&med, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &med, nil
}

func (r *medicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error) {
	var meds []domain.Medication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *medicationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Medication{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

func (r *medicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Medication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
