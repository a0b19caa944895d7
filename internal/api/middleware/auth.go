package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const (
	AdminIDKey    contextKey = "adminID"
	AdminEmailKey contextKey = "adminEmail"
)

// AdminAuth guards reviewer-facing routes. The bearer credential is
// validated and resolved to an existing admin before any data access.
type AdminAuth struct {
	jwtManager *security.JWTManager
	admins     domain.AdminRepository
}

// NewAdminAuth creates a new admin auth middleware
func NewAdminAuth(jwtManager *security.JWTManager, admins domain.AdminRepository) *AdminAuth {
	return &AdminAuth{jwtManager: jwtManager, admins: admins}
}

// Authenticate validates the bearer token and confirms the admin exists
func (m *AdminAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Not authorized — token missing or malformed")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "Not authorized — token missing or malformed")
			return
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil || claims.Role != security.RoleAdmin {
			response.Unauthorized(w, "Not authorized — invalid or expired token")
			return
		}

		adminID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(w, "Not authorized — invalid or expired token")
			return
		}

		admin, err := m.admins.FindByID(r.Context(), adminID)
		if err != nil {
			response.InternalError(w, "Server error")
			return
		}
		if admin == nil {
			response.NotFound(w, "Admin not found")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, admin.ID)
		ctx = context.WithValue(ctx, AdminEmailKey, admin.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID gets the admin ID from context
func GetAdminID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(AdminIDKey).(primitive.ObjectID)
	return id, ok
}

// GetAdminEmail gets the admin email from context
func GetAdminEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailKey).(string)
	return email, ok
}
