package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletUC defines the interface for wallet ledger operations
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/wallet WalletUC
type WalletUC interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)
	// CanAfford is advisory and never fails; Withdraw remains the guard
	CanAfford(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) bool
	CreateWallet(ctx context.Context, userID uuid.UUID, initialBalance decimal.Decimal) (*models.Wallet, error)
	GetTransactions(ctx context.Context, userID uuid.UUID) ([]*models.WalletTransaction, error)
}
