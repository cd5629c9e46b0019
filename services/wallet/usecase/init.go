package usecase

import (
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/wallet"
)

// WalletUC implements the wallet ledger
type WalletUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	logger     *logger.ZapLogger
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(cfg *models.Config, walletRepo wallet.WalletRepo, log *logger.ZapLogger) wallet.WalletUC {
	return &WalletUC{
		cfg:        cfg,
		walletRepo: walletRepo,
		logger:     log,
	}
}
