package sweeper

import (
	"context"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/services/reservation"
)

const (
	defaultInterval = time.Minute
	defaultTimeout  = 30 * time.Second
)

// Sweeper periodically expires Pending reservations past their deadline
type Sweeper struct {
	reservationUC reservation.ReservationUC
	interval      time.Duration
	timeout       time.Duration
	nrApp         *newrelic.Application
	logger        *logger.ZapLogger
}

// NewSweeper creates a sweeper from the reservation config. nrApp may be nil.
func NewSweeper(cfg *models.Config, reservationUC reservation.ReservationUC, nrApp *newrelic.Application, log *logger.ZapLogger) *Sweeper {
	interval := cfg.Reservation.SweepInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	timeout := cfg.Reservation.SweepTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Sweeper{
		reservationUC: reservationUC,
		interval:      interval,
		timeout:       timeout,
		nrApp:         nrApp,
		logger:        log,
	}
}

// Run sweeps every interval until ctx is done
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Timeout sweeper started",
		logger.Duration("interval", s.interval),
		logger.Duration("timeout", s.timeout))

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("Timeout sweeper stopped")
			return
		}
	}
}

// RunOnce performs a single bounded sweep
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	ctx, end := nrpkg.BackgroundTransaction(ctx, s.nrApp, "Sweeper.TimeoutPenalties")
	defer end()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	processed, err := s.reservationUC.CheckAndApplyTimeoutPenalties(ctx)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromContext(ctx), err)
		s.logger.Error("Timeout sweep failed",
			logger.Int("processed", processed),
			logger.Err(err))
		return processed, err
	}

	s.logger.Info("Timeout sweep finished",
		logger.Int("processed", processed),
		logger.Duration("elapsed", time.Since(started)))
	return processed, nil
}
