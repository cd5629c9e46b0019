package usecase

import (
	"time"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/notification"
	"github.com/piresc/parkspot/services/penalty"
	"github.com/piresc/parkspot/services/reservation"
)

// ReservationUC implements the reservation state machine
type ReservationUC struct {
	cfg             *models.Config
	reservationRepo reservation.ReservationRepo
	spots           reservation.SpotDirectory
	users           reservation.UserDirectory
	penaltyUC       penalty.PenaltyUC
	notifier        notification.Notifier
	logger          *logger.ZapLogger
	now             func() time.Time
}

// NewReservationUC creates a new reservation use case
func NewReservationUC(
	cfg *models.Config,
	reservationRepo reservation.ReservationRepo,
	spots reservation.SpotDirectory,
	users reservation.UserDirectory,
	penaltyUC penalty.PenaltyUC,
	notifier notification.Notifier,
	log *logger.ZapLogger,
) reservation.ReservationUC {
	return &ReservationUC{
		cfg:             cfg,
		reservationRepo: reservationRepo,
		spots:           spots,
		users:           users,
		penaltyUC:       penaltyUC,
		notifier:        notifier,
		logger:          log,
		now:             time.Now,
	}
}
