package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a per-user monetary balance
type Wallet struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// WalletTransactionKind distinguishes credits from debits in the audit trail
type WalletTransactionKind string

const (
	WalletTransactionDeposit    WalletTransactionKind = "Deposit"
	WalletTransactionWithdrawal WalletTransactionKind = "Withdrawal"
)

// WalletTransaction is an append-only record of a balance mutation
type WalletTransaction struct {
	ID           uuid.UUID             `json:"id" db:"id"`
	WalletID     uuid.UUID             `json:"wallet_id" db:"wallet_id"`
	Kind         WalletTransactionKind `json:"kind" db:"kind"`
	Amount       decimal.Decimal       `json:"amount" db:"amount"`
	BalanceAfter decimal.Decimal       `json:"balance_after" db:"balance_after"`
	CreatedAt    time.Time             `json:"created_at" db:"created_at"`
}

// WalletAmountRequest is the payload for deposit and withdraw calls
type WalletAmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// BalanceResponse carries a wallet balance
type BalanceResponse struct {
	UserID  uuid.UUID       `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}
