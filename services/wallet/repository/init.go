package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/wallet"
)

// WalletRepo implements the wallet repository on PostgreSQL
type WalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB) wallet.WalletRepo {
	return &WalletRepo{
		cfg: cfg,
		db:  db,
	}
}
