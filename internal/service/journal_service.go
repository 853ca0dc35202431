package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrAccessDenied  = errors.New("access denied")
)

type JournalService struct {
	journalRepo repository.JournalRepository
	gardenRepo  repository.GardenRepository
}

func NewJournalService(journalRepo repository.JournalRepository, gardenRepo repository.GardenRepository) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		gardenRepo:  gardenRepo,
	}
}

type CreateEntryInput struct {
	GardenID uuid.UUID
	Date     time.Time
	Notes    string
	PhotoURL *string
}

type UpdateEntryInput struct {
	Date     *time.Time
	Notes    *string
	PhotoURL *string
}

func (s *JournalService) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*domain.JournalEntry, error) {
	if err := requireOwner(ctx, userID, gardenOwner(s.gardenRepo, input.GardenID), ErrAccessDenied); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		GardenID:  input.GardenID,
		Date:      input.Date,
		Notes:     input.Notes,
		PhotoURL:  input.PhotoURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) ListEntriesByGarden(ctx context.Context, userID, gardenID uuid.UUID) ([]*domain.JournalEntry, error) {
	if err := requireOwner(ctx, userID, gardenOwner(s.gardenRepo, gardenID), ErrAccessDenied); err != nil {
		return nil, err
	}

	return s.journalRepo.ListByGardenID(ctx, gardenID)
}

func (s *JournalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	return s.loadOwnedEntry(ctx, userID, entryID)
}

func (s *JournalService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input UpdateEntryInput) (*domain.JournalEntry, error) {
	entry, err := s.loadOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
	if input.PhotoURL != nil {
		entry.PhotoURL = input.PhotoURL
	}
	entry.UpdatedAt = time.Now()

	if err := s.journalRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := s.loadOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	return s.journalRepo.Delete(ctx, entryID)
}

// loadOwnedEntry fetches an entry and verifies ownership through the parent
// garden. A missing entry is not-found; an entry under someone else's
// garden is access-denied.
func (s *JournalService) loadOwnedEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if err := requireOwner(ctx, userID, gardenOwner(s.gardenRepo, entry.GardenID), ErrAccessDenied); err != nil {
		return nil, err
	}

	return entry, nil
}
