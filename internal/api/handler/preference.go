package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/metrics"
	"github.com/swiftsites/swiftsites-api/internal/service"
)

// PreferenceHandler handles handoff submissions.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// Submit handles POST /api/preferences.
func (h *PreferenceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input domain.PreferenceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	pref, err := h.preferenceService.Submit(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Internal server error.")
		return
	}

	metrics.PreferencesSubmitted.Inc()
	response.Created(w, map[string]any{
		"message":    "Preference submitted successfully",
		"preference": pref,
	})
}
