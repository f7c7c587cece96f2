package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"civitas/internal/delivery/http/helpers"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	Logger  *slog.Logger
	DB      Pinger
	Timeout time.Duration
}

func NewHealthController(logger *slog.Logger, db Pinger, timeout time.Duration) *HealthController {
	return &HealthController{Logger: logger, DB: db, Timeout: timeout}
}

// HealthResponse reports service and store status.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// Health godoc
// @Summary Health check
// @Description Pings the store. Answers 503 when the store is unreachable.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()
	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
