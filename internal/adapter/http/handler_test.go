package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/registration"

	"github.com/labstack/echo/v4"
)

type healthBody struct {
	Status       string            `json:"status"`
	Time         string            `json:"time"`
	Dependencies map[string]string `json:"dependencies"`
}

func TestHealth_ReturnsOKWithRFC3339NanoUTC(t *testing.T) {
	e := echo.New()
	h := NewHandler(HealthCheck{Name: "mysql", Check: func(context.Context) error { return nil }})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	if body.Status != "ok" || body.Dependencies["mysql"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
	parsed, err := time.Parse(time.RFC3339Nano, body.Time)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v (value=%q)", err, body.Time)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
}

func TestHealth_DegradedWhenDependencyFails(t *testing.T) {
	e := echo.New()
	h := NewHandler(
		HealthCheck{Name: "mysql", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var body healthBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Status != "degraded" || body.Dependencies["redis"] != "connection refused" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.Validation("bad"), http.StatusUnprocessableEntity},
		{category.ErrInactive, http.StatusUnprocessableEntity},
		{registration.ErrNotFound, http.StatusNotFound},
		{registration.ErrStaleVersion, http.StatusPreconditionFailed},
		{registration.ErrDuplicateCustomer, http.StatusConflict},
		{category.ErrInUse, http.StatusConflict},
		{errs.New(errs.ErrInvalidTransition, "x"), http.StatusConflict},
		{errs.New(errs.ErrUnauthorized, "x"), http.StatusUnauthorized},
		{errs.New(errs.ErrForbidden, "x"), http.StatusForbidden},
		{errs.Store(errors.New("db down")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRespondError_HidesStoreCause(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := respondError(c, errs.Store(errors.New("dial tcp 10.0.0.1:3306"))); err != nil {
		t.Fatalf("respondError: %v", err)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if rec.Code != http.StatusInternalServerError || er.Error != "internal error" {
		t.Fatalf("got %d %q", rec.Code, er.Error)
	}
}
