package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dom/garden-manager/internal/ai"
	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatCompleter is the slice of the ai.Client the generation services need.
type ChatCompleter interface {
	Chat(ctx context.Context, req ai.ChatRequest) (string, error)
}

const planTemperature = 0.2

// planSchema is rendered literally into the prompt so the model knows the
// exact shape to emit.
const planSchema = `{
  "season": "string, e.g. \"Spring 2025\"",
  "recommendations": [
    {
      "name": "string",
      "type": "vegetable | herb | flower",
      "plantingSeason": ["string"],
      "companionPlants": ["string"],
      "careInstructions": {
        "water": "string",
        "sun": "string",
        "spacing": "string"
      }
    }
  ],
  "plantingCalendar": [
    {
      "month": "string",
      "tasks": ["string"]
    }
  ]
}`

const planSystemPrompt = "You are a master gardener with 30 years experience. " +
	"Provide specific, actionable advice. Always return valid JSON."

type PlanService struct {
	gardenRepo repository.GardenRepository
	chat       ChatCompleter
}

func NewPlanService(gardenRepo repository.GardenRepository, chat ChatCompleter) *PlanService {
	return &PlanService{
		gardenRepo: gardenRepo,
		chat:       chat,
	}
}

type GeneratePlanInput struct {
	ZipCode         string
	GardenSize      domain.GardenSize
	SunlightHours   int
	ExperienceLevel domain.ExperienceLevel
	Goals           []string
}

// GeneratePlantingPlan produces a schema-valid plan for the profile and
// persists it as a new garden. Input validation failures propagate; every
// generation failure after that point degrades to the static fallback plan,
// so a valid profile always yields a persisted garden.
func (s *PlanService) GeneratePlantingPlan(ctx context.Context, userID uuid.UUID, input GeneratePlanInput) (*domain.GardenProfile, *domain.PlantingPlan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, nil, err
	}

	plan := s.generatePlan(ctx, input)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, nil, err
	}
	goalsJSON, err := json.Marshal(input.Goals)
	if err != nil {
		return nil, nil, err
	}

	garden := &domain.GardenProfile{
		ID:              uuid.New(),
		UserID:          userID,
		ZipCode:         input.ZipCode,
		GardenSize:      input.GardenSize,
		SunlightHours:   input.SunlightHours,
		ExperienceLevel: input.ExperienceLevel,
		Goals:           datatypes.JSON(goalsJSON),
		PlantingPlan:    datatypes.JSON(planJSON),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.gardenRepo.Create(ctx, garden); err != nil {
		return nil, nil, err
	}

	return garden, plan, nil
}

// generatePlan is total: whatever goes wrong with the completion call the
// caller gets a schema-valid plan back.
func (s *PlanService) generatePlan(ctx context.Context, input GeneratePlanInput) *domain.PlantingPlan {
	content, err := s.chat.Chat(ctx, ai.ChatRequest{
		Messages: []ai.Message{
			{Role: "system", Content: planSystemPrompt},
			{Role: "user", Content: buildPlanPrompt(input)},
		},
		Format:  "json",
		Options: ai.Options{Temperature: planTemperature},
	})
	if err != nil {
		log.Printf("ERROR [PlanService.generatePlan] completion call failed: %v", err)
		return FallbackPlan()
	}

	var plan domain.PlantingPlan
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &plan); err != nil {
		log.Printf("ERROR [PlanService.generatePlan] response is not valid JSON: %v", err)
		return FallbackPlan()
	}

	if err := plan.Validate(); err != nil {
		log.Printf("ERROR [PlanService.generatePlan] response failed schema validation: %v", err)
		return FallbackPlan()
	}

	return &plan
}

func buildPlanPrompt(input GeneratePlanInput) string {
	return fmt.Sprintf(`As an expert organic gardener, create a planting plan for:
- USDA Zone: %s
- Garden size: %s
- Sunlight: %d hours/day
- Experience: %s
- Goals: %s

Return a single JSON object matching this schema exactly:
%s

Format: valid JSON only, no surrounding text.`,
		input.ZipCode,
		input.GardenSize,
		input.SunlightHours,
		input.ExperienceLevel,
		strings.Join(input.Goals, ", "),
		planSchema,
	)
}

func validatePlanInput(input GeneratePlanInput) error {
	switch input.GardenSize {
	case domain.GardenSizeSmall, domain.GardenSizeMedium, domain.GardenSizeLarge:
	default:
		return domain.NewValidationError("gardenSize", "must be one of small, medium, large")
	}

	if input.SunlightHours < 0 || input.SunlightHours > 24 {
		return domain.NewValidationError("sunlightHours", "must be between 0 and 24")
	}

	switch input.ExperienceLevel {
	case domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceExpert:
	default:
		return domain.NewValidationError("experienceLevel", "must be one of beginner, intermediate, expert")
	}

	if len(input.Goals) == 0 {
		return domain.NewValidationError("goals", "at least one goal is required")
	}

	return nil
}

// stripCodeFences removes a markdown code fence wrapper some models put
// around JSON output.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag like "json" on the opening fence.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
