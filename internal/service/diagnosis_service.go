package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dom/garden-manager/internal/ai"
	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository"
	"github.com/google/uuid"
)

const (
	diagnosisTemperature  = 0.3
	minDescriptionLength  = 10
	diagnosisSystemPrompt = "You are a plant pathologist. Provide: " +
		"1) Likely cause 2) Immediate actions 3) Organic treatments " +
		"4) Prevention tips 5) Recovery timeline"
)

type DiagnosisService struct {
	diagnosisRepo repository.DiagnosisRepository
	chat          ChatCompleter
}

func NewDiagnosisService(diagnosisRepo repository.DiagnosisRepository, chat ChatCompleter) *DiagnosisService {
	return &DiagnosisService{
		diagnosisRepo: diagnosisRepo,
		chat:          chat,
	}
}

// DiagnosePlant asks the model for a diagnosis and persists the result. The
// only failure that propagates besides persistence is a too-short
// description; completion failures degrade to the fallback template.
func (s *DiagnosisService) DiagnosePlant(ctx context.Context, userID uuid.UUID, description string, imageURL *string) (*domain.PlantDiagnosis, error) {
	if len(description) < minDescriptionLength {
		return nil, domain.NewValidationError("description",
			fmt.Sprintf("must be at least %d characters", minDescriptionLength))
	}

	diagnosis := s.generateDiagnosis(ctx, description, imageURL)

	record := &domain.PlantDiagnosis{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		ImageURL:    imageURL,
		Diagnosis:   diagnosis,
		CreatedAt:   time.Now(),
	}

	if err := s.diagnosisRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *DiagnosisService) ListDiagnoses(ctx context.Context, userID uuid.UUID) ([]*domain.PlantDiagnosis, error) {
	return s.diagnosisRepo.ListByUserID(ctx, userID)
}

func (s *DiagnosisService) generateDiagnosis(ctx context.Context, description string, imageURL *string) string {
	userMsg := ai.Message{
		Role:    "user",
		Content: "Diagnose this plant problem: " + description,
	}
	if imageURL != nil && *imageURL != "" {
		userMsg.Images = []string{*imageURL}
	}

	content, err := s.chat.Chat(ctx, ai.ChatRequest{
		Messages: []ai.Message{
			{Role: "system", Content: diagnosisSystemPrompt},
			userMsg,
		},
		Options: ai.Options{Temperature: diagnosisTemperature},
	})
	if err != nil {
		log.Printf("ERROR [DiagnosisService.generateDiagnosis] completion call failed: %v", err)
		return FallbackDiagnosis(description)
	}

	return content
}
