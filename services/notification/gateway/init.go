package gateway

import (
	"time"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	"github.com/piresc/parkspot/internal/pkg/retry"
	"github.com/piresc/parkspot/services/notification"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 500 * time.Millisecond
)

// NATSNotifier publishes notification events for the notifier worker
type NATSNotifier struct {
	client  *natspkg.Client
	retrier *retry.Retrier
	logger  *logger.ZapLogger
	now     func() time.Time
}

// NewNATSNotifier creates a notifier that publishes through client
func NewNATSNotifier(cfg *models.Config, client *natspkg.Client, log *logger.ZapLogger) notification.Notifier {
	attempts := cfg.Notification.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	backoff := cfg.Notification.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &NATSNotifier{
		client:  client,
		retrier: retry.New(retry.FixedConfig(attempts, backoff), log),
		logger:  log,
		now:     time.Now,
	}
}
