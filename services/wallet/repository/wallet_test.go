package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walletColumns = []string{"id", "user_id", "balance", "updated_at"}

func setupWalletRepoTest(t *testing.T) (*WalletRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return &WalletRepo{cfg: &models.Config{}, db: sqlxDB}, mock
}

func TestWalletRepo_Create(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)
	w := &models.Wallet{UserID: uuid.New(), Balance: decimal.RequireFromString("100.00")}

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(sqlmock.AnyArg(), w.UserID, w.Balance, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), w))
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUserID(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(walletColumns).
					AddRow(uuid.New().String(), userID.String(), "42.50", time.Now())
				mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id").
					WithArgs(userID).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows(walletColumns))
			},
			wantErr: apperror.ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupWalletRepoTest(t)
			tt.mockSetup(mock)

			w, err := repo.GetByUserID(context.Background(), userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
			} else {
				require.NoError(t, err)
				assert.Equal(t, userID, w.UserID)
				assert.True(t, decimal.RequireFromString("42.50").Equal(w.Balance))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalletRepo_Credit(t *testing.T) {
	userID := uuid.New()
	amount := decimal.RequireFromString("25.00")

	t.Run("credits and records a deposit", func(t *testing.T) {
		repo, mock := setupWalletRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
			WithArgs(amount, userID, sqlmock.AnyArg(), models.WalletTransactionDeposit).
			WillReturnRows(sqlmock.NewRows(walletColumns).
				AddRow(uuid.New().String(), userID.String(), "125.00", time.Now()))

		w, err := repo.Credit(context.Background(), userID, amount)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("125.00").Equal(w.Balance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing wallet", func(t *testing.T) {
		repo, mock := setupWalletRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
			WillReturnRows(sqlmock.NewRows(walletColumns))

		_, err := repo.Credit(context.Background(), userID, amount)
		assert.ErrorIs(t, err, apperror.ErrWalletNotFound)
	})
}

func TestWalletRepo_Debit(t *testing.T) {
	userID := uuid.New()
	amount := decimal.RequireFromString("10.00")
	debitQuery := regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")
	existsQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1)")

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "sufficient balance",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(debitQuery).
					WithArgs(amount, userID, sqlmock.AnyArg(), models.WalletTransactionWithdrawal).
					WillReturnRows(sqlmock.NewRows(walletColumns).
						AddRow(uuid.New().String(), userID.String(), "0.00", time.Now()))
			},
		},
		{
			name: "insufficient balance leaves wallet untouched",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(debitQuery).WillReturnRows(sqlmock.NewRows(walletColumns))
				mock.ExpectQuery(existsQuery).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantErr: apperror.ErrInsufficientBalance,
		},
		{
			name: "missing wallet",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(debitQuery).WillReturnRows(sqlmock.NewRows(walletColumns))
				mock.ExpectQuery(existsQuery).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: apperror.ErrWalletNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(debitQuery).WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("failed to debit wallet: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupWalletRepoTest(t)
			tt.mockSetup(mock)

			w, err := repo.Debit(context.Background(), userID, amount)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.True(t, w.Balance.IsZero())
			case errors.Is(tt.wantErr, apperror.ErrInsufficientBalance), errors.Is(tt.wantErr, apperror.ErrWalletNotFound):
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalletRepo_ListTransactions(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)
	userID := uuid.New()
	walletID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "wallet_id", "kind", "amount", "balance_after", "created_at"}).
		AddRow(uuid.New().String(), walletID.String(), "Deposit", "100.00", "100.00", time.Now()).
		AddRow(uuid.New().String(), walletID.String(), "Withdrawal", "10.00", "90.00", time.Now())
	mock.ExpectQuery("FROM wallet_transactions t JOIN wallets w").
		WithArgs(userID).
		WillReturnRows(rows)

	txs, err := repo.ListTransactions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.WalletTransactionWithdrawal, txs[1].Kind)
	assert.True(t, decimal.RequireFromString("90.00").Equal(txs[1].BalanceAfter))
}
