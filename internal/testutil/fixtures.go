package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		name:     "Test User",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"email":    b.email,
		"password": b.password,
		"name":     b.name,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	userID, err := uuid.Parse(authResp.User.ID)
	if err != nil {
		t.Fatalf("failed to parse user ID: %v", err)
	}

	var user domain.User
	if err := ts.DB.DB.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}

	return &user, authResp.AccessToken
}

// GardenBuilder creates test garden profiles
type GardenBuilder struct {
	userID          uuid.UUID
	zipCode         string
	gardenSize      domain.GardenSize
	sunlightHours   int
	experienceLevel domain.ExperienceLevel
	goals           []string
	plan            *domain.PlantingPlan
}

// NewGardenBuilder creates a GardenBuilder with sensible defaults
func NewGardenBuilder(userID uuid.UUID) *GardenBuilder {
	return &GardenBuilder{
		userID:          userID,
		zipCode:         "7b",
		gardenSize:      domain.GardenSizeMedium,
		sunlightHours:   6,
		experienceLevel: domain.ExperienceBeginner,
		goals:           []string{"grow vegetables"},
	}
}

// WithPlan attaches a planting plan
func (b *GardenBuilder) WithPlan(plan *domain.PlantingPlan) *GardenBuilder {
	b.plan = plan
	return b
}

// WithGoals overrides the goals list
func (b *GardenBuilder) WithGoals(goals ...string) *GardenBuilder {
	b.goals = goals
	return b
}

// Build creates the garden profile in the database
func (b *GardenBuilder) Build(t *testing.T, db *gorm.DB) *domain.GardenProfile {
	t.Helper()

	goalsJSON, err := json.Marshal(b.goals)
	if err != nil {
		t.Fatalf("failed to marshal goals: %v", err)
	}

	garden := &domain.GardenProfile{
		ID:              uuid.New(),
		UserID:          b.userID,
		ZipCode:         b.zipCode,
		GardenSize:      b.gardenSize,
		SunlightHours:   b.sunlightHours,
		ExperienceLevel: b.experienceLevel,
		Goals:           datatypes.JSON(goalsJSON),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if b.plan != nil {
		planJSON, err := json.Marshal(b.plan)
		if err != nil {
			t.Fatalf("failed to marshal plan: %v", err)
		}
		garden.PlantingPlan = datatypes.JSON(planJSON)
	}

	if err := db.Create(garden).Error; err != nil {
		t.Fatalf("failed to create garden profile: %v", err)
	}

	return garden
}

// CreateJournalEntry inserts a journal entry for a garden
func CreateJournalEntry(t *testing.T, db *gorm.DB, gardenID uuid.UUID, notes string) *domain.JournalEntry {
	t.Helper()

	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		GardenID:  gardenID,
		Date:      time.Now().Truncate(time.Second),
		Notes:     notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create journal entry: %v", err)
	}

	return entry
}
