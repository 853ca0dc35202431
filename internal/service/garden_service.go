package service

import (
	"context"
	"errors"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGardenNotFound = errors.New("garden profile not found")

type GardenService struct {
	gardenRepo repository.GardenRepository
}

func NewGardenService(gardenRepo repository.GardenRepository) *GardenService {
	return &GardenService{gardenRepo: gardenRepo}
}

func (s *GardenService) ListGardens(ctx context.Context, userID uuid.UUID) ([]*domain.GardenProfile, error) {
	return s.gardenRepo.ListByUserID(ctx, userID)
}

// GetGarden reports not-found for both a missing garden and one owned by
// another user; unlike journal entries, garden lookups do not leak
// existence.
func (s *GardenService) GetGarden(ctx context.Context, userID, gardenID uuid.UUID) (*domain.GardenProfile, error) {
	if err := requireOwner(ctx, userID, gardenOwner(s.gardenRepo, gardenID), ErrGardenNotFound); err != nil {
		return nil, err
	}

	garden, err := s.gardenRepo.GetByID(ctx, gardenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGardenNotFound
		}
		return nil, err
	}
	return garden, nil
}
