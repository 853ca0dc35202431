package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlantDiagnosis is immutable once created; there are no update or delete
// operations on it.
type PlantDiagnosis struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ImageURL    *string   `json:"imageUrl"`
	Diagnosis   string    `json:"diagnosis" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
