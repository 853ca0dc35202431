package repository

import (
	"context"
	"time"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type GardenRepository interface {
	Create(ctx context.Context, garden *domain.GardenProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GardenProfile, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.GardenProfile, error)
	Update(ctx context.Context, garden *domain.GardenProfile) error
}

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	ListByGardenID(ctx context.Context, gardenID uuid.UUID) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiagnosisRepository interface {
	Create(ctx context.Context, diagnosis *domain.PlantDiagnosis) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PlantDiagnosis, error)
}

type Repositories struct {
	User      UserRepository
	Garden    GardenRepository
	Journal   JournalRepository
	Diagnosis DiagnosisRepository
}
