package sender

import (
	"context"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// SimulationSender logs messages instead of delivering them
type SimulationSender struct {
	logger *logger.ZapLogger
}

// NewSimulationSender creates a logging-only sender
func NewSimulationSender(log *logger.ZapLogger) *SimulationSender {
	return &SimulationSender{logger: log}
}

// Send logs msg
func (s *SimulationSender) Send(ctx context.Context, msg models.EmailMessage) error {
	s.logger.Info("Simulated email",
		logger.String("to", msg.To),
		logger.String("subject", msg.Subject),
		logger.String("body", msg.Body))
	return nil
}
