package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository/postgres"
	"github.com/dom/garden-manager/internal/service"
	"github.com/dom/garden-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlanInput() service.GeneratePlanInput {
	return service.GeneratePlanInput{
		ZipCode:         "7b",
		GardenSize:      domain.GardenSizeMedium,
		SunlightHours:   6,
		ExperienceLevel: domain.ExperienceBeginner,
		Goals:           []string{"grow vegetables"},
	}
}

const modelPlanJSON = `{
	"season": "Spring 2026",
	"recommendations": [
		{
			"name": "Peppers",
			"type": "vegetable",
			"plantingSeason": ["Spring"],
			"companionPlants": ["Onions"],
			"careInstructions": {
				"water": "1 inch per week",
				"sun": "Full sun",
				"spacing": "18 inches apart"
			}
		}
	],
	"plantingCalendar": [
		{"month": "April", "tasks": ["Harden off seedlings"]}
	]
}`

func TestPlanService_GeneratePlantingPlan_InputValidation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	chat := &testutil.StubChat{}
	planService := service.NewPlanService(repos.Garden, chat)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name   string
		mutate func(*service.GeneratePlanInput)
		field  string
	}{
		{
			name:   "negative sunlight hours",
			mutate: func(in *service.GeneratePlanInput) { in.SunlightHours = -1 },
			field:  "sunlightHours",
		},
		{
			name:   "sunlight hours above 24",
			mutate: func(in *service.GeneratePlanInput) { in.SunlightHours = 25 },
			field:  "sunlightHours",
		},
		{
			name:   "unknown garden size",
			mutate: func(in *service.GeneratePlanInput) { in.GardenSize = "huge" },
			field:  "gardenSize",
		},
		{
			name:   "unknown experience level",
			mutate: func(in *service.GeneratePlanInput) { in.ExperienceLevel = "master" },
			field:  "experienceLevel",
		},
		{
			name:   "empty goals",
			mutate: func(in *service.GeneratePlanInput) { in.Goals = nil },
			field:  "goals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPlanInput()
			tt.mutate(&input)

			_, _, err := planService.GeneratePlantingPlan(ctx, user.ID, input)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	// Input validation fails fast, before any completion call
	assert.Empty(t, chat.Requests)
}

func TestPlanService_GeneratePlantingPlan_ModelPath(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name       string
		response   string
		err        error
		wantSeason string
	}{
		{
			name:       "valid model response is used",
			response:   modelPlanJSON,
			wantSeason: "Spring 2026",
		},
		{
			name:       "code-fenced response is unwrapped",
			response:   "```json\n" + modelPlanJSON + "\n```",
			wantSeason: "Spring 2026",
		},
		{
			name:       "completion failure falls back",
			err:        errors.New("connection refused"),
			wantSeason: "Spring",
		},
		{
			name:       "unparseable response falls back",
			response:   "I am sorry, I cannot help with that.",
			wantSeason: "Spring",
		},
		{
			name:       "schema-invalid response falls back",
			response:   `{"season": "Spring", "recommendations": [], "plantingCalendar": []}`,
			wantSeason: "Spring",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &testutil.StubChat{}
			chat.Script(tt.response, tt.err)
			planService := service.NewPlanService(repos.Garden, chat)

			garden, plan, err := planService.GeneratePlantingPlan(ctx, user.ID, validPlanInput())
			require.NoError(t, err)
			require.NotNil(t, garden)
			require.NotNil(t, plan)

			// The result always satisfies the plan schema
			require.NoError(t, plan.Validate())
			assert.Equal(t, tt.wantSeason, plan.Season)
			assert.NotEmpty(t, plan.Recommendations)
			assert.NotEmpty(t, plan.PlantingCalendar)
		})
	}
}

func TestPlanService_GeneratePlantingPlan_RoundTrip(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	chat := &testutil.StubChat{}
	chat.Script(modelPlanJSON, nil)
	planService := service.NewPlanService(repos.Garden, chat)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	garden, plan, err := planService.GeneratePlantingPlan(ctx, user.ID, validPlanInput())
	require.NoError(t, err)

	// Refetching the garden yields a plan deep-equal to the generated one
	stored, err := repos.Garden.GetByID(ctx, garden.ID)
	require.NoError(t, err)

	var storedPlan domain.PlantingPlan
	require.NoError(t, json.Unmarshal(stored.PlantingPlan, &storedPlan))
	assert.Equal(t, *plan, storedPlan)
}

func TestPlanService_PromptIncludesProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	chat := &testutil.StubChat{}
	chat.Script(modelPlanJSON, nil)
	planService := service.NewPlanService(repos.Garden, chat)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	input := validPlanInput()
	input.Goals = []string{"grow vegetables", "attract pollinators"}

	_, _, err := planService.GeneratePlantingPlan(ctx, user.ID, input)
	require.NoError(t, err)

	require.Len(t, chat.Requests, 1)
	req := chat.Requests[0]
	assert.Equal(t, "json", req.Format)
	assert.InDelta(t, 0.2, req.Options.Temperature, 0.001)

	require.Len(t, req.Messages, 2)
	prompt := req.Messages[1].Content
	assert.Contains(t, prompt, "medium")
	assert.Contains(t, prompt, "6 hours/day")
	assert.Contains(t, prompt, "beginner")
	assert.Contains(t, prompt, "grow vegetables, attract pollinators")
	assert.Contains(t, prompt, `"plantingCalendar"`)
}
