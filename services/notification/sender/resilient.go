package sender

import (
	"context"

	"github.com/piresc/parkspot/internal/pkg/circuitbreaker"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/internal/pkg/retry"
	"github.com/piresc/parkspot/services/notification"
)

// ResilientSender guards a provider with a circuit breaker and retries
// each send inside it
type ResilientSender struct {
	next    notification.EmailSender
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
	logger  *logger.ZapLogger
}

// NewResilientSender wraps next
func NewResilientSender(next notification.EmailSender, breaker *circuitbreaker.CircuitBreaker, retrier *retry.Retrier, log *logger.ZapLogger) *ResilientSender {
	return &ResilientSender{
		next:    next,
		breaker: breaker,
		retrier: retrier,
		logger:  log,
	}
}

// Send delivers msg through the wrapped sender
func (s *ResilientSender) Send(ctx context.Context, msg models.EmailMessage) error {
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return s.retrier.Execute(ctx, func(ctx context.Context) error {
			return s.next.Send(ctx, msg)
		})
	})
	if err != nil {
		s.logger.Warn("Email delivery failed",
			logger.String("to", msg.To),
			logger.String("subject", msg.Subject),
			logger.String("circuit", s.breaker.State().String()),
			logger.Err(err))
	}
	return err
}
