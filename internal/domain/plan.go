package domain

import "fmt"

type PlantType string

const (
	PlantTypeVegetable PlantType = "vegetable"
	PlantTypeHerb      PlantType = "herb"
	PlantTypeFlower    PlantType = "flower"
)

type CareInstructions struct {
	Water   string `json:"water"`
	Sun     string `json:"sun"`
	Spacing string `json:"spacing"`
}

type PlantRecommendation struct {
	Name             string           `json:"name"`
	Type             PlantType        `json:"type"`
	PlantingSeason   []string         `json:"plantingSeason"`
	CompanionPlants  []string         `json:"companionPlants"`
	CareInstructions CareInstructions `json:"careInstructions"`
}

type MonthlyTask struct {
	Month string   `json:"month"`
	Tasks []string `json:"tasks"`
}

// PlantingPlan is a value object, stored serialized inside GardenProfile
// rather than as its own table.
type PlantingPlan struct {
	Season           string                `json:"season"`
	Recommendations  []PlantRecommendation `json:"recommendations"`
	PlantingCalendar []MonthlyTask         `json:"plantingCalendar"`
}

// Validate enforces the structural contract for model-generated plans.
// A plan that fails here is discarded in favor of fallback content.
func (p *PlantingPlan) Validate() error {
	if p.Season == "" {
		return fmt.Errorf("plan season is empty")
	}
	if len(p.Recommendations) == 0 {
		return fmt.Errorf("plan has no recommendations")
	}
	for i, rec := range p.Recommendations {
		if rec.Name == "" {
			return fmt.Errorf("recommendation %d has no name", i)
		}
		switch rec.Type {
		case PlantTypeVegetable, PlantTypeHerb, PlantTypeFlower:
		default:
			return fmt.Errorf("recommendation %q has invalid type %q", rec.Name, rec.Type)
		}
		if len(rec.PlantingSeason) == 0 {
			return fmt.Errorf("recommendation %q has no planting season", rec.Name)
		}
	}
	if len(p.PlantingCalendar) == 0 {
		return fmt.Errorf("plan has no planting calendar")
	}
	for _, entry := range p.PlantingCalendar {
		if entry.Month == "" {
			return fmt.Errorf("calendar entry has no month")
		}
		if len(entry.Tasks) == 0 {
			return fmt.Errorf("calendar entry for %q has no tasks", entry.Month)
		}
	}
	return nil
}
