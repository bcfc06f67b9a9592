package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dannykellett/ai-chat-bot/app"
	"github.com/dannykellett/ai-chat-bot/utils"
)

// Health returns the liveness handler. Its success means only that the
// process is running: it must not touch the database or any other
// downstream dependency, so it cannot fail during an outage.
func Health(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}
}

// ReadinessResponse reports per-dependency readiness
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Readiness returns the readiness handler. Unlike Health it probes the
// database when one is configured.
func Readiness(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := ReadinessResponse{
			Status: "ready",
			Checks: map[string]string{},
		}

		if deps.DB == nil {
			response.Checks["database"] = "not_configured"
		} else if err := deps.DB.PingContext(ctx); err != nil {
			response.Status = "not_ready"
			response.Checks["database"] = "unhealthy"
			deps.Logger.Warn("database readiness check failed", zap.Error(err))
		} else {
			response.Checks["database"] = "healthy"
		}

		status := http.StatusOK
		if response.Status != "ready" {
			status = http.StatusServiceUnavailable
		}
		_ = utils.WriteJSON(w, status, response)
	}
}
