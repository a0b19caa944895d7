package handler

import (
	"net/http"

	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/config"
	"github.com/swiftsites/swiftsites-api/internal/llm"
	"github.com/swiftsites/swiftsites-api/internal/repository/mongodb"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db *mongodb.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}

// ListProviders returns the registered text-generation providers
func ListProviders(cfg *config.Config, router *llm.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := router.ListProviders()

		providers := make([]map[string]any, 0, len(names))
		for _, name := range names {
			providers = append(providers, map[string]any{
				"name":    name,
				"default": name == cfg.LLM.DefaultProvider,
			})
		}

		response.OK(w, map[string]any{
			"providers":        providers,
			"default_provider": cfg.LLM.DefaultProvider,
		})
	}
}
