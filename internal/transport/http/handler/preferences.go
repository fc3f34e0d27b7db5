package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"riftgate-rest-api/internal/domain"
	"riftgate-rest-api/internal/service"
	"riftgate-rest-api/internal/transport/http/response"
	"riftgate-rest-api/pkg/apierror"

	"github.com/go-chi/chi/v5"
)

// PreferencesHandler handles the authenticated user-preferences requests.
type PreferencesHandler struct {
	preferencesService *service.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler.
func NewPreferencesHandler(preferencesService *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesService: preferencesService,
	}
}

// UpdatePreferencesRequest is the body for the preferences update endpoint.
// Preferences is kept raw so the service layer decides what a valid payload
// looks like.
type UpdatePreferencesRequest struct {
	Preferences json.RawMessage `json:"preferences"`
}

// PreferencesResponse wraps a user's preferences record.
type PreferencesResponse struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message,omitempty"`
	Data      *domain.UserPreferences `json:"data"`
	Timestamp time.Time               `json:"timestamp"`
}

// UpdatePreferences handles PUT /api/v1/users/{userId}/prefs
// Replaces the stored preferences with the known fields of the payload.
func (h *PreferencesHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("Invalid request body"))
		return
	}
	defer r.Body.Close()

	data, err := h.preferencesService.Update(r.Context(), userID, req.Preferences)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, PreferencesResponse{
		Success:   true,
		Message:   "Preferences updated successfully",
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// GetPreferences handles GET /api/v1/users/{userId}/prefs
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	data, err := h.preferencesService.Get(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, PreferencesResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}
