package sender

import (
	"time"

	"github.com/piresc/parkspot/internal/pkg/circuitbreaker"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/internal/pkg/retry"
	"github.com/piresc/parkspot/services/notification"
)

// Providers
const (
	ProviderMailerSend = "mailersend"
	ProviderHTTP       = "http"
)

const sendTimeout = 10 * time.Second

// NewEmailSender builds the configured sender. Real providers are wrapped
// with a circuit breaker and retry; simulation mode only logs.
func NewEmailSender(cfg *models.Config, log *logger.ZapLogger) notification.EmailSender {
	nc := cfg.Notification
	if nc.SimulationMode {
		log.Info("Email simulation mode enabled")
		return NewSimulationSender(log)
	}

	var provider notification.EmailSender
	switch nc.Provider {
	case ProviderHTTP:
		provider = NewHTTPSender(nc, log)
	default:
		provider = NewMailerSendSender(nc, log)
	}

	retryCfg := retry.FixedConfig(nc.RetryAttempts, nc.RetryBackoff)
	retryCfg.RetryableFunc = IsRetryable
	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("email-"+providerName(nc.Provider)), log)

	return NewResilientSender(provider, breaker, retry.New(retryCfg, log), log)
}

func providerName(p string) string {
	if p == "" {
		return ProviderMailerSend
	}
	return p
}
