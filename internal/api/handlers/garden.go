package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dom/garden-manager/internal/api/middleware"
	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GardenHandler struct {
	planService      *service.PlanService
	gardenService    *service.GardenService
	diagnosisService *service.DiagnosisService
}

func NewGardenHandler(planService *service.PlanService, gardenService *service.GardenService, diagnosisService *service.DiagnosisService) *GardenHandler {
	return &GardenHandler{
		planService:      planService,
		gardenService:    gardenService,
		diagnosisService: diagnosisService,
	}
}

type CreatePlanRequest struct {
	ZipCode         string   `json:"zipCode"`
	GardenSize      string   `json:"gardenSize"`
	SunlightHours   int      `json:"sunlightHours"`
	ExperienceLevel string   `json:"experienceLevel"`
	Goals           []string `json:"goals"`
}

type PlanResponse struct {
	GardenID     string               `json:"gardenId"`
	PlantingPlan *domain.PlantingPlan `json:"plantingPlan"`
}

type GardenProfileResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	ZipCode         string          `json:"zipCode"`
	GardenSize      string          `json:"gardenSize"`
	SunlightHours   int             `json:"sunlightHours"`
	ExperienceLevel string          `json:"experienceLevel"`
	Goals           []string        `json:"goals"`
	PlantingPlan    json.RawMessage `json:"plantingPlan"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type DiagnoseRequest struct {
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

type DiagnosisResponse struct {
	DiagnosisID string `json:"diagnosisId"`
	Diagnosis   string `json:"diagnosis"`
}

type DiagnosisListItem struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Diagnosis   string    `json:"diagnosis"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *GardenHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	garden, plan, err := h.planService.GeneratePlantingPlan(r.Context(), userID, service.GeneratePlanInput{
		ZipCode:         req.ZipCode,
		GardenSize:      domain.GardenSize(req.GardenSize),
		SunlightHours:   req.SunlightHours,
		ExperienceLevel: domain.ExperienceLevel(req.ExperienceLevel),
		Goals:           req.Goals,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [GardenHandler.GeneratePlan] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, PlanResponse{
		GardenID:     garden.ID.String(),
		PlantingPlan: plan,
	})
}

func (h *GardenHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gardens, err := h.gardenService.ListGardens(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [GardenHandler.ListProfiles] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]GardenProfileResponse, 0, len(gardens))
	for _, garden := range gardens {
		resp = append(resp, toGardenProfileResponse(garden))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *GardenHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gardenID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid garden ID", http.StatusBadRequest)
		return
	}

	garden, err := h.gardenService.GetGarden(r.Context(), userID, gardenID)
	if err != nil {
		if errors.Is(err, service.ErrGardenNotFound) {
			http.Error(w, "Garden profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [GardenHandler.GetProfile] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toGardenProfileResponse(garden))
}

func (h *GardenHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	diagnosis, err := h.diagnosisService.DiagnosePlant(r.Context(), userID, req.Description, req.Image)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [GardenHandler.Diagnose] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, DiagnosisResponse{
		DiagnosisID: diagnosis.ID.String(),
		Diagnosis:   diagnosis.Diagnosis,
	})
}

func (h *GardenHandler) ListDiagnoses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	diagnoses, err := h.diagnosisService.ListDiagnoses(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [GardenHandler.ListDiagnoses] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]DiagnosisListItem, 0, len(diagnoses))
	for _, d := range diagnoses {
		resp = append(resp, DiagnosisListItem{
			ID:          d.ID.String(),
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Diagnosis:   d.Diagnosis,
			CreatedAt:   d.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func toGardenProfileResponse(garden *domain.GardenProfile) GardenProfileResponse {
	var goals []string
	if len(garden.Goals) > 0 {
		_ = json.Unmarshal(garden.Goals, &goals)
	}

	var plan json.RawMessage
	if len(garden.PlantingPlan) > 0 {
		plan = json.RawMessage(garden.PlantingPlan)
	}

	return GardenProfileResponse{
		ID:              garden.ID.String(),
		UserID:          garden.UserID.String(),
		ZipCode:         garden.ZipCode,
		GardenSize:      string(garden.GardenSize),
		SunlightHours:   garden.SunlightHours,
		ExperienceLevel: string(garden.ExperienceLevel),
		Goals:           goals,
		PlantingPlan:    plan,
		CreatedAt:       garden.CreatedAt,
		UpdatedAt:       garden.UpdatedAt,
	}
}
