package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/linkvault/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of the health check
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns 200 while the database is reachable and 503 otherwise.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
