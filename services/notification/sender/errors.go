package sender

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/piresc/parkspot/internal/pkg/circuitbreaker"
)

// ProviderError is a non-2xx answer from an email provider
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider returned status %d: %s", e.StatusCode, e.Body)
}

// IsRetryable reports whether a send failure may succeed on another attempt.
// Client errors other than 429 and an open circuit are final.
func IsRetryable(err error) bool {
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.StatusCode >= http.StatusInternalServerError || pe.StatusCode == http.StatusTooManyRequests
	}
	return true
}
