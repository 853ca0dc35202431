package postgres

import (
	"context"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct {
	db *gorm.DB
}

func NewDiagnosisRepository(db *gorm.DB) *diagnosisRepository {
	return &diagnosisRepository{db: db}
}

func (r *diagnosisRepository) Create(ctx context.Context, diagnosis *domain.PlantDiagnosis) error {
	return r.db.WithContext(ctx).Create(diagnosis).Error
}

func (r *diagnosisRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PlantDiagnosis, error) {
	var diagnoses []*domain.PlantDiagnosis
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}
