package postgres

import (
	"context"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gardenRepository struct {
	db *gorm.DB
}

func NewGardenRepository(db *gorm.DB) *gardenRepository {
	return &gardenRepository{db: db}
}

func (r *gardenRepository) Create(ctx context.Context, garden *domain.GardenProfile) error {
	return r.db.WithContext(ctx).Create(garden).Error
}

func (r *gardenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GardenProfile, error) {
	var garden domain.GardenProfile
	err := r.db.WithContext(ctx).First(&garden, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &garden, nil
}

func (r *gardenRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.GardenProfile, error) {
	var gardens []*domain.GardenProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&gardens).Error
	if err != nil {
		return nil, err
	}
	return gardens, nil
}

func (r *gardenRepository) Update(ctx context.Context, garden *domain.GardenProfile) error {
	return r.db.WithContext(ctx).Save(garden).Error
}
