package postgres

import (
	"context"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *journalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) ListByGardenID(ctx context.Context, gardenID uuid.UUID) ([]*domain.JournalEntry, error) {
	var entries []*domain.JournalEntry
	err := r.db.WithContext(ctx).
		Where("garden_id = ?", gardenID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.JournalEntry{}, "id = ?", id).Error
}
