package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// GetBalance returns the current balance of the user's wallet
func (uc *WalletUC) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	w, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}

// Deposit credits a strictly positive amount
func (uc *WalletUC) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount
	}

	w, err := uc.walletRepo.Credit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Wallet credited",
		logger.UUID("user_id", userID),
		logger.Decimal("amount", amount),
		logger.Decimal("balance", w.Balance))
	return w, nil
}

// Withdraw debits a strictly positive amount. It fails without touching the
// balance when the wallet does not cover the amount.
func (uc *WalletUC) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount
	}

	w, err := uc.walletRepo.Debit(ctx, userID, amount)
	if err != nil {
		uc.logger.Warn("Wallet debit rejected",
			logger.UUID("user_id", userID),
			logger.Decimal("amount", amount),
			logger.Err(err))
		return nil, err
	}

	uc.logger.Info("Wallet debited",
		logger.UUID("user_id", userID),
		logger.Decimal("amount", amount),
		logger.Decimal("balance", w.Balance))
	return w, nil
}

// CanAfford reports false for a non-positive amount, a missing wallet or a
// lookup failure.
func (uc *WalletUC) CanAfford(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	w, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Debug("Affordability check without wallet",
			logger.UUID("user_id", userID),
			logger.Err(err))
		return false
	}
	return w.Balance.GreaterThanOrEqual(amount)
}

// CreateWallet opens a wallet with a non-negative starting balance
func (uc *WalletUC) CreateWallet(ctx context.Context, userID uuid.UUID, initialBalance decimal.Decimal) (*models.Wallet, error) {
	if initialBalance.IsNegative() {
		return nil, apperror.ErrInvalidAmount
	}

	w := &models.Wallet{
		UserID:  userID,
		Balance: initialBalance,
	}
	if err := uc.walletRepo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetTransactions returns the wallet's audit trail
func (uc *WalletUC) GetTransactions(ctx context.Context, userID uuid.UUID) ([]*models.WalletTransaction, error) {
	if _, err := uc.walletRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.walletRepo.ListTransactions(ctx, userID)
}
