package service

import (
	"fmt"

	"github.com/dom/garden-manager/internal/domain"
)

// FallbackPlan returns the static, schema-valid plan used whenever the
// completion endpoint fails or returns unusable output.
func FallbackPlan() *domain.PlantingPlan {
	return &domain.PlantingPlan{
		Season: "Spring",
		Recommendations: []domain.PlantRecommendation{
			{
				Name:            "Tomatoes",
				Type:            domain.PlantTypeVegetable,
				PlantingSeason:  []string{"Spring"},
				CompanionPlants: []string{"Basil", "Marigolds"},
				CareInstructions: domain.CareInstructions{
					Water:   "1-2 inches per week",
					Sun:     "Full sun (6+ hours)",
					Spacing: "24-36 inches apart",
				},
			},
			{
				Name:            "Basil",
				Type:            domain.PlantTypeHerb,
				PlantingSeason:  []string{"Spring", "Summer"},
				CompanionPlants: []string{"Tomatoes"},
				CareInstructions: domain.CareInstructions{
					Water:   "Keep soil moist",
					Sun:     "Full sun to partial shade",
					Spacing: "10-12 inches apart",
				},
			},
		},
		PlantingCalendar: []domain.MonthlyTask{
			{Month: "March", Tasks: []string{"Start seeds indoors", "Prepare soil"}},
			{Month: "April", Tasks: []string{"Transplant seedlings", "Add compost"}},
			{Month: "May", Tasks: []string{"Mulch beds", "Begin regular watering"}},
		},
	}
}

// FallbackDiagnosis returns generic advice echoing the reported problem
// when the completion endpoint is unavailable.
func FallbackDiagnosis(description string) string {
	const maxEcho = 120
	if len(description) > maxEcho {
		description = description[:maxEcho] + "..."
	}
	return fmt.Sprintf(`We could not reach the diagnosis service, so here is general guidance for: %q

1) Likely cause: common stressors are overwatering, underwatering, insufficient light, or pests. Check soil moisture and leaf undersides first.
2) Immediate actions: remove clearly dead or diseased material, isolate the plant from others, and adjust watering.
3) Organic treatments: neem oil or insecticidal soap for pests; improve drainage and airflow for fungal issues.
4) Prevention: water at the base in the morning, avoid wetting foliage, and inspect plants weekly.
5) Recovery timeline: most plants show improvement within 2-3 weeks once the stressor is removed.`, description)
}
