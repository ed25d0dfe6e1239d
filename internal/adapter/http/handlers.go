package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct{ checks []HealthCheck }

func NewHandler(checks ...HealthCheck) *Handler { return &Handler{checks: checks} }

func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	deps := map[string]string{}
	for _, hc := range h.checks {
		if err := hc.Check(ctx); err != nil {
			deps[hc.Name] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[hc.Name] = "ok"
	}
	return c.JSON(code, map[string]any{
		"status":       status,
		"time":         time.Now().UTC().Format(time.RFC3339Nano),
		"dependencies": deps,
	})
}
