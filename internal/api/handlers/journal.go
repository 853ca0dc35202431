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

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

type CreateEntryRequest struct {
	GardenID string    `json:"gardenId"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes"`
	PhotoURL *string   `json:"photoUrl"`
}

type UpdateEntryRequest struct {
	Date     *time.Time `json:"date"`
	Notes    *string    `json:"notes"`
	PhotoURL *string    `json:"photoUrl"`
}

type JournalEntryResponse struct {
	ID        string    `json:"id"`
	GardenID  string    `json:"gardenId"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	gardenID, err := uuid.Parse(req.GardenID)
	if err != nil {
		http.Error(w, "Invalid garden ID", http.StatusBadRequest)
		return
	}

	if req.Notes == "" {
		http.Error(w, "Notes are required", http.StatusBadRequest)
		return
	}

	entry, err := h.journalService.CreateEntry(r.Context(), userID, service.CreateEntryInput{
		GardenID: gardenID,
		Date:     req.Date,
		Notes:    req.Notes,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *JournalHandler) ListByGarden(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gardenID, err := uuid.Parse(chi.URLParam(r, "gardenId"))
	if err != nil {
		http.Error(w, "Invalid garden ID", http.StatusBadRequest)
		return
	}

	entries, err := h.journalService.ListEntriesByGarden(r.Context(), userID, gardenID)
	if err != nil {
		h.writeServiceError(w, "ListByGarden", err)
		return
	}

	resp := make([]JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toEntryResponse(entry))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	entry, err := h.journalService.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.journalService.UpdateEntry(r.Context(), userID, entryID, service.UpdateEntryInput{
		Date:     req.Date,
		Notes:    req.Notes,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.writeServiceError(w, "Update", err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid entry ID", http.StatusBadRequest)
		return
	}

	if err := h.journalService.DeleteEntry(r.Context(), userID, entryID); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Journal entry deleted successfully"})
}

func (h *JournalHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		http.Error(w, "Journal entry not found", http.StatusNotFound)
	case errors.Is(err, service.ErrAccessDenied):
		http.Error(w, "Access denied", http.StatusForbidden)
	default:
		log.Printf("ERROR [JournalHandler.%s] %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func toEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:        entry.ID.String(),
		GardenID:  entry.GardenID.String(),
		Date:      entry.Date,
		Notes:     entry.Notes,
		PhotoURL:  entry.PhotoURL,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
