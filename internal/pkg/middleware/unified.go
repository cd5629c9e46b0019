package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/utils"
)

// RequestIDHeader carries the request id in and out of the service
const RequestIDHeader = "X-Request-ID"

// APIKeyHeader carries the caller's API key on internal routes
const APIKeyHeader = "X-API-Key"

type requestIDKey struct{}

// Config holds configuration for the middleware
type Config struct {
	Logger      *logger.ZapLogger
	APIKeys     map[string]string
	ServiceName string
}

// Middleware bundles request tracking, logging, panic recovery and API key checks
type Middleware struct {
	config Config
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(config Config) *Middleware {
	if config.Logger == nil {
		config.Logger = logger.NewNop()
	}
	return &Middleware{config: config}
}

// RequestIDFromContext returns the request id set by Handler
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Handler assigns a request id, recovers panics and logs every request
func (m *Middleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()

			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)
			ctx := context.WithValue(c.Request().Context(), requestIDKey{}, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			defer func() {
				if r := recover(); r != nil {
					m.handlePanic(c, r, requestID)
					err = nil
				}
				m.logRequest(c, requestID, time.Since(start), err)
			}()

			return next(c)
		}
	}
}

// APIKeyHandler rejects requests whose X-API-Key does not match one of the
// keys configured for allowedServices.
func (m *Middleware) APIKeyHandler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key required")
			}

			for _, service := range allowedServices {
				if expected, ok := m.config.APIKeys[service]; ok && expected != "" && expected == apiKey {
					c.Set("api_service", service)
					return next(c)
				}
			}

			m.config.Logger.Warn("Rejected request with invalid API key",
				logger.String("path", c.Request().URL.Path),
				logger.String("ip", c.RealIP()))
			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}

func (m *Middleware) logRequest(c echo.Context, requestID string, duration time.Duration, err error) {
	status := c.Response().Status
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
	}

	fields := []logger.Field{
		logger.String("request_id", requestID),
		logger.String("service", m.config.ServiceName),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Path()),
		logger.Int("status", status),
		logger.Duration("duration", duration),
		logger.String("ip", c.RealIP()),
	}

	switch {
	case err != nil:
		m.config.Logger.Error("Request failed", append(fields, logger.Err(err))...)
	case status >= http.StatusInternalServerError:
		m.config.Logger.Error("Request failed with server error", fields...)
	case status >= http.StatusBadRequest:
		m.config.Logger.Warn("Request completed with error", fields...)
	default:
		m.config.Logger.Debug("Request completed", fields...)
	}
}
