package usecase

import (
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/user"
	"github.com/piresc/parkspot/services/wallet"
)

// UserUC implements the user directory
type UserUC struct {
	cfg        *models.Config
	userRepo   user.UserRepo
	walletUC   wallet.WalletUC
	transactor database.Transactor
	logger     *logger.ZapLogger
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo user.UserRepo,
	walletUC wallet.WalletUC,
	transactor database.Transactor,
	log *logger.ZapLogger,
) user.UserUC {
	return &UserUC{
		cfg:        cfg,
		userRepo:   userRepo,
		walletUC:   walletUC,
		transactor: transactor,
		logger:     log,
	}
}
