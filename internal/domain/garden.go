package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GardenSize string

const (
	GardenSizeSmall  GardenSize = "small"
	GardenSizeMedium GardenSize = "medium"
	GardenSizeLarge  GardenSize = "large"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

type GardenProfile struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index"`
	ZipCode         string          `json:"zipCode" gorm:"not null"`
	GardenSize      GardenSize      `json:"gardenSize" gorm:"not null"`
	SunlightHours   int             `json:"sunlightHours" gorm:"not null"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" gorm:"not null"`
	Goals           datatypes.JSON  `json:"goals" gorm:"type:jsonb;default:'[]'"`
	PlantingPlan    datatypes.JSON  `json:"plantingPlan" gorm:"type:jsonb"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
