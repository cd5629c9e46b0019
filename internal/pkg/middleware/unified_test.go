package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func newTestMiddleware() *Middleware {
	return NewMiddleware(Config{
		Logger:      logger.NewNop(),
		APIKeys:     map[string]string{"scheduler": "secret-key"},
		ServiceName: "parking-service",
	})
}

func TestHandler_AssignsRequestID(t *testing.T) {
	e := echo.New()
	m := newTestMiddleware()
	e.Use(m.Handler())

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestHandler_PropagatesIncomingRequestID(t *testing.T) {
	e := echo.New()
	e.Use(newTestMiddleware().Handler())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestHandler_RecoversPanic(t *testing.T) {
	e := echo.New()
	e.Use(newTestMiddleware().Handler())
	e.GET("/boom", func(c echo.Context) error { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(APIKeyHeader, "should-not-be-logged")
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestAPIKeyHandler(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		wantStatus int
	}{
		{name: "missing key", apiKey: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", apiKey: "nope", wantStatus: http.StatusUnauthorized},
		{name: "valid key", apiKey: "secret-key", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := newTestMiddleware()
			e.POST("/internal/sweeps/timeouts", func(c echo.Context) error {
				assert.Equal(t, "scheduler", c.Get("api_service"))
				return c.NoContent(http.StatusOK)
			}, m.APIKeyHandler("scheduler"))

			req := httptest.NewRequest(http.MethodPost, "/internal/sweeps/timeouts", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKeyHandler_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	e := echo.New()
	m := NewMiddleware(Config{APIKeys: map[string]string{"scheduler": ""}})
	e.POST("/internal", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.APIKeyHandler("scheduler"))

	req := httptest.NewRequest(http.MethodPost, "/internal", nil)
	req.Header.Set(APIKeyHeader, "")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSafeHeaders_DropsSecrets(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer x")
	h.Set("X-Api-Key", "k")
	h.Set("Content-Type", "application/json")

	got := safeHeaders(h)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, got)
}
