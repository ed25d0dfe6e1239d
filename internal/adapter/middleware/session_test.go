package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/infrastructure/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFunc func(ctx context.Context, token string) (*admin.Session, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (*admin.Session, error) {
	return f(ctx, token)
}

var stubAuth = authFunc(func(_ context.Context, token string) (*admin.Session, error) {
	switch token {
	case "reports":
		return &admin.Session{Username: "clerk", Permissions: admin.CapabilitySet{admin.CapViewReports: {}}}, nil
	case "broken":
		return nil, errs.Store(context.DeadlineExceeded)
	default:
		return nil, errs.New(errs.ErrUnauthorized, "invalid or expired token")
	}
})

func TestRequireSessionAndPermission(t *testing.T) {
	e := echo.New()
	g := e.Group("/admin", RequireSession(stubAuth))
	g.GET("/reports", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionFrom(c).Username)
	}, RequirePermission(admin.CapViewReports, admin.CapViewAccounts))
	g.GET("/permissions", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequirePermission(admin.CapManagePermissions))

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"no header", "/admin/reports", "", http.StatusUnauthorized},
		{"not bearer", "/admin/reports", "Basic abc", http.StatusUnauthorized},
		{"bad token", "/admin/reports", "Bearer nope", http.StatusUnauthorized},
		{"store failure", "/admin/reports", "Bearer broken", http.StatusInternalServerError},
		{"allowed", "/admin/reports", "Bearer reports", http.StatusOK},
		{"missing capability", "/admin/permissions", "Bearer reports", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, "clerk", rec.Body.String())
			}
		})
	}
}

func TestRequirePermission_WithoutSession(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	h := RequirePermission(admin.CapViewReports)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, c.Response().Status)
	assert.Nil(t, SessionFrom(c))
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(RequestLogger(log), Metrics(m))
	e.GET("/public/categories", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "boom") })

	for _, path := range []string{"/public/categories", "/public/categories", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(HeaderRequestID, testReqID)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, promtest.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/public/categories", "200")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/boom", "418")))

	require.Len(t, hook.AllEntries(), 3)
	first := hook.AllEntries()[0]
	assert.Equal(t, logrus.InfoLevel, first.Level)
	assert.Equal(t, "/public/categories", first.Data["uri"])
	assert.Equal(t, testReqID, first.Data["request_id"])
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
