package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// Create inserts a new wallet
func (r *WalletRepo) Create(ctx context.Context, w *models.Wallet) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO wallets (id, user_id, balance, updated_at)
		VALUES (:id, :user_id, :balance, :updated_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, w); err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetByUserID retrieves the wallet owned by userID
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, balance, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w models.Wallet
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &w, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &w, nil
}

// Credit adds amount to the balance and records a deposit in one statement
func (r *WalletRepo) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	query := `
		WITH credited AS (
			UPDATE wallets
			SET balance = balance + $1, updated_at = NOW()
			WHERE user_id = $2
			RETURNING id, user_id, balance, updated_at
		), audit AS (
			INSERT INTO wallet_transactions (id, wallet_id, kind, amount, balance_after, created_at)
			SELECT $3, id, $4, $1, balance, NOW() FROM credited
		)
		SELECT id, user_id, balance, updated_at FROM credited
	`

	var w models.Wallet
	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &w, query,
		amount, userID, uuid.New(), models.WalletTransactionDeposit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}
	return &w, nil
}

// Debit subtracts amount only when the balance covers it. The balance check
// and the update are one statement, so concurrent debits cannot overdraw.
func (r *WalletRepo) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	query := `
		WITH debited AS (
			UPDATE wallets
			SET balance = balance - $1, updated_at = NOW()
			WHERE user_id = $2 AND balance >= $1
			RETURNING id, user_id, balance, updated_at
		), audit AS (
			INSERT INTO wallet_transactions (id, wallet_id, kind, amount, balance_after, created_at)
			SELECT $3, id, $4, $1, balance, NOW() FROM debited
		)
		SELECT id, user_id, balance, updated_at FROM debited
	`

	exec := database.Executor(ctx, r.db)

	var w models.Wallet
	err := sqlx.GetContext(ctx, exec, &w, query,
		amount, userID, uuid.New(), models.WalletTransactionWithdrawal)
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, exec, &exists, `SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1)`, userID); err != nil {
		return nil, fmt.Errorf("failed to check wallet: %w", err)
	}
	if !exists {
		return nil, apperror.ErrWalletNotFound
	}
	return nil, apperror.ErrInsufficientBalance
}

// ListTransactions returns the audit trail of the user's wallet, oldest first
func (r *WalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*models.WalletTransaction, error) {
	query := `
		SELECT t.id, t.wallet_id, t.kind, t.amount, t.balance_after, t.created_at
		FROM wallet_transactions t
		JOIN wallets w ON w.id = t.wallet_id
		WHERE w.user_id = $1
		ORDER BY t.created_at, t.id
	`

	var txs []*models.WalletTransaction
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &txs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return txs, nil
}
