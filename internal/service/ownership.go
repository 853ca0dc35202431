package service

import (
	"context"
	"errors"

	"github.com/dom/garden-manager/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerLookup resolves the owning user of some resource.
type OwnerLookup func(ctx context.Context) (uuid.UUID, error)

// requireOwner is the single ownership check shared by the garden and
// journal services. A missing resource and a foreign owner both map to
// denied so the two services cannot drift apart; each caller chooses the
// error kind it surfaces.
func requireOwner(ctx context.Context, userID uuid.UUID, lookup OwnerLookup, denied error) error {
	owner, err := lookup(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied
		}
		return err
	}
	if owner != userID {
		return denied
	}
	return nil
}

// gardenOwner looks up the owning user of a garden profile.
func gardenOwner(repo repository.GardenRepository, gardenID uuid.UUID) OwnerLookup {
	return func(ctx context.Context) (uuid.UUID, error) {
		garden, err := repo.GetByID(ctx, gardenID)
		if err != nil {
			return uuid.Nil, err
		}
		return garden.UserID, nil
	}
}
