package usecase

import (
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/notification"
	"github.com/piresc/parkspot/services/payment"
	"github.com/piresc/parkspot/services/wallet"
)

// PaymentUC implements the payment calculator
type PaymentUC struct {
	cfg          *models.Config
	paymentRepo  payment.PaymentRepo
	reservations payment.ReservationReader
	spots        payment.SpotReader
	users        payment.UserReader
	walletUC     wallet.WalletUC
	notifier     notification.Notifier
	transactor   database.Transactor
	logger       *logger.ZapLogger
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payment.PaymentRepo,
	reservations payment.ReservationReader,
	spots payment.SpotReader,
	users payment.UserReader,
	walletUC wallet.WalletUC,
	notifier notification.Notifier,
	transactor database.Transactor,
	log *logger.ZapLogger,
) payment.PaymentUC {
	return &PaymentUC{
		cfg:          cfg,
		paymentRepo:  paymentRepo,
		reservations: reservations,
		spots:        spots,
		users:        users,
		walletUC:     walletUC,
		notifier:     notifier,
		transactor:   transactor,
		logger:       log,
	}
}
