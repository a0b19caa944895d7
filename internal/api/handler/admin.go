package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/service"
)

// AdminHandler handles reviewer endpoints.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Register handles admin registration, gated by the shared admin key.
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds domain.AdminCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(creds); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	admin, err := h.adminService.Register(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminKey):
			response.Forbidden(w, "Invalid admin key")
		case errors.Is(err, service.ErrAdminExists):
			response.BadRequest(w, "Admin already registered")
		default:
			response.InternalError(w, "Internal server error.")
		}
		return
	}

	response.Created(w, map[string]any{
		"id":    admin.ID,
		"email": admin.Email,
	})
}

// Login handles admin login and returns a role-carrying token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.AdminCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(creds); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	token, err := h.adminService.Login(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminKey):
			response.Forbidden(w, "Invalid admin key")
		case errors.Is(err, service.ErrAdminNotFound), errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalError(w, "Internal server error.")
		}
		return
	}

	response.OK(w, map[string]string{"token": token})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsersWithStatus(r.Context())
	if err != nil {
		response.InternalError(w, "Internal server error.")
		return
	}

	response.OK(w, users)
}

// GetPreference handles GET /api/admin/preference/{id}.
func (h *AdminHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pref, err := h.adminService.GetPreference(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			response.NotFound(w, "Preference not found")
			return
		}
		response.InternalError(w, "Internal server error.")
		return
	}

	response.OK(w, pref)
}
