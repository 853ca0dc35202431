package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry belongs to a garden, never directly to a user. Ownership is
// always resolved through the parent garden's UserID.
type JournalEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GardenID  uuid.UUID `json:"gardenId" gorm:"type:uuid;not null;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"type:text;not null"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Garden *GardenProfile `json:"garden,omitempty" gorm:"foreignKey:GardenID"`
}
