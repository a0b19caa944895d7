package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/service"
)

var validate = validator.New()

// AuthHandler handles client account endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(w, "Email already registered")
			return
		}
		response.InternalError(w, "Internal server error.")
		return
	}

	response.Created(w, map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	user, tokens, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalError(w, "Internal server error.")
		return
	}

	response.OK(w, map[string]any{
		"user":   user,
		"tokens": tokens,
	})
}

// validationMessage flattens the first validator failure into a short
// human-readable message.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		e := ve[0]
		switch e.Tag() {
		case "required":
			return e.Field() + " is required"
		case "email":
			return e.Field() + " must be a valid email"
		case "min":
			return e.Field() + " must be at least " + e.Param() + " characters"
		case "max":
			return e.Field() + " must be at most " + e.Param() + " characters"
		}
		return e.Field() + " failed validation on " + e.Tag()
	}
	return err.Error()
}
