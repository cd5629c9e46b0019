package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletRepo defines the interface for wallet data access operations.
// Credit and Debit are single atomic statements; Debit never drives a balance below zero.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/wallet WalletRepo
type WalletRepo interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*models.WalletTransaction, error)
}
