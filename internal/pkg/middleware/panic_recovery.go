package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/parkspot/internal/pkg/logger"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
)

var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

func (m *Middleware) handlePanic(c echo.Context, r interface{}, requestID string) {
	stack := string(debug.Stack())
	req := c.Request()

	log := m.config.Logger
	if txn := nrpkg.FromEchoContext(c); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("panic: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
		log = log.WithNewRelicContext(txn)
	}

	log.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.Any("headers", safeHeaders(req.Header)),
		logger.String("request_id", requestID),
		logger.String("stack_trace", stack))

	if !c.Response().Committed {
		if err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success":    false,
			"error":      "Internal Server Error",
			"request_id": requestID,
		}); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func safeHeaders(headers http.Header) map[string]string {
	safe := make(map[string]string, len(headers))
	for name, values := range headers {
		if sensitiveHeaders[strings.ToLower(name)] || len(values) == 0 {
			continue
		}
		safe[name] = values[0]
	}
	return safe
}
