package usecase

import (
	"time"

	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/penalty"
	"github.com/piresc/parkspot/services/wallet"
)

// PenaltyUC implements the penalty engine
type PenaltyUC struct {
	cfg          *models.Config
	penaltyRepo  penalty.PenaltyRepo
	reservations penalty.ReservationReader
	walletUC     wallet.WalletUC
	transactor   database.Transactor
	logger       *logger.ZapLogger
	now          func() time.Time
}

// NewPenaltyUC creates a new penalty use case
func NewPenaltyUC(
	cfg *models.Config,
	penaltyRepo penalty.PenaltyRepo,
	reservations penalty.ReservationReader,
	walletUC wallet.WalletUC,
	transactor database.Transactor,
	log *logger.ZapLogger,
) penalty.PenaltyUC {
	return &PenaltyUC{
		cfg:          cfg,
		penaltyRepo:  penaltyRepo,
		reservations: reservations,
		walletUC:     walletUC,
		transactor:   transactor,
		logger:       log,
		now:          time.Now,
	}
}
