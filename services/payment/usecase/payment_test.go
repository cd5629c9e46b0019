package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	dbmocks "github.com/piresc/parkspot/internal/pkg/database/mocks"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	notificationmocks "github.com/piresc/parkspot/services/notification/mocks"
	"github.com/piresc/parkspot/services/payment/mocks"
	walletmocks "github.com/piresc/parkspot/services/wallet/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "equals " + m.want.String() }

func decEq(s string) gomock.Matcher { return decimalMatcher{want: decimal.RequireFromString(s)} }

type paymentFixture struct {
	uc           *PaymentUC
	repo         *mocks.MockPaymentRepo
	reservations *mocks.MockReservationReader
	spots        *mocks.MockSpotReader
	users        *mocks.MockUserReader
	wallet       *walletmocks.MockWalletUC
	notifier     *notificationmocks.MockNotifier
	tx           *dbmocks.MockTransactor
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	f := &paymentFixture{
		repo:         mocks.NewMockPaymentRepo(ctrl),
		reservations: mocks.NewMockReservationReader(ctrl),
		spots:        mocks.NewMockSpotReader(ctrl),
		users:        mocks.NewMockUserReader(ctrl),
		wallet:       walletmocks.NewMockWalletUC(ctrl),
		notifier:     notificationmocks.NewMockNotifier(ctrl),
		tx:           dbmocks.NewMockTransactor(ctrl),
	}
	f.uc = NewPaymentUC(&models.Config{}, f.repo, f.reservations, f.spots, f.users, f.wallet, f.notifier, f.tx, logger.NewNop()).(*PaymentUC)
	return f
}

// runInline makes the mocked transactor call fn directly
func (f *paymentFixture) runInline() *gomock.Call {
	return f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

// completedReservation parks for 90 minutes on a 10.00/h spot
func (f *paymentFixture) completedReservation() *models.Reservation {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r := &models.Reservation{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		SpotID:    uuid.New(),
		StartTime: start,
		EndTime:   null.TimeFrom(start.Add(90 * time.Minute)),
		Status:    models.ReservationStatusCompleted,
	}
	f.reservations.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	f.spots.EXPECT().GetSpot(gomock.Any(), r.SpotID).
		Return(&models.ParkingSpot{ID: r.SpotID, HourlyRate: decimal.RequireFromString("10.00")}, nil)
	return r
}

func TestChargeFor(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		rate     string
		duration time.Duration
		want     string
	}{
		{rate: "10.00", duration: 90 * time.Minute, want: "15.00"},
		{rate: "3.33", duration: 20 * time.Minute, want: "1.11"},
		{rate: "5.00", duration: time.Hour + 7*time.Minute, want: "5.58"},
		{rate: "0.10", duration: 3 * time.Minute, want: "0.01"},
		{rate: "1.00", duration: 18 * time.Second, want: "0.01"},
		{rate: "10.00", duration: -time.Hour, want: "0"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s for %s", tt.rate, tt.duration), func(t *testing.T) {
			_, amount := ChargeFor(decimal.RequireFromString(tt.rate), start, start.Add(tt.duration))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(amount), "got %s", amount)
		})
	}
}

func TestCalculatePaymentAmount(t *testing.T) {
	f := newPaymentFixture(t)
	r := f.completedReservation()

	quote, err := f.uc.CalculatePaymentAmount(context.Background(), r.ID)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.5").Equal(quote.Hours))
	assert.True(t, decimal.RequireFromString("15.00").Equal(quote.Amount))
}

func TestCalculatePaymentAmount_Errors(t *testing.T) {
	t.Run("missing reservation", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.reservations.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrReservationNotFound)

		_, err := f.uc.CalculatePaymentAmount(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
	})

	t.Run("not completed", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.reservations.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(&models.Reservation{StartTime: time.Now()}, nil)

		_, err := f.uc.CalculatePaymentAmount(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperror.ErrInvalidPayment)
	})

	t.Run("spot unresolved", func(t *testing.T) {
		f := newPaymentFixture(t)
		now := time.Now()
		f.reservations.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(&models.Reservation{StartTime: now, EndTime: null.TimeFrom(now.Add(time.Hour))}, nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSpotNotFound)

		_, err := f.uc.CalculatePaymentAmount(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperror.ErrPaymentProcessing)
		assert.Equal(t, apperror.KindProcessingFailure, apperror.KindOf(err))
	})

	t.Run("rounds to zero", func(t *testing.T) {
		f := newPaymentFixture(t)
		now := time.Now()
		f.reservations.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(&models.Reservation{StartTime: now, EndTime: null.TimeFrom(now.Add(time.Second))}, nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), gomock.Any()).
			Return(&models.ParkingSpot{HourlyRate: decimal.RequireFromString("1.00")}, nil)

		_, err := f.uc.CalculatePaymentAmount(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperror.ErrInvalidPayment)
	})
}

func TestProcessPayment_Success(t *testing.T) {
	f := newPaymentFixture(t)
	r := &models.Reservation{ID: uuid.New()}
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), r.ID).Return(nil, apperror.ErrPaymentNotFound)
	r = f.completedReservationWithID(r.ID)

	var created *models.Payment
	gomock.InOrder(
		f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, decEq("15.00")).Return(true),
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *models.Payment) error {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			created = p
			return nil
		}),
		f.runInline(),
		f.wallet.EXPECT().Withdraw(gomock.Any(), r.UserID, decEq("15.00")).
			Return(&models.Wallet{Balance: decimal.RequireFromString("85.00")}, nil),
		f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusCompleted).Return(nil),
		f.users.EXPECT().GetUser(gomock.Any(), r.UserID).Return(&models.User{Email: "ana@example.com"}, nil),
		f.notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), "ana@example.com", decEq("15.00")).Return(nil),
	)

	p, err := f.uc.ProcessPayment(context.Background(), r.ID)

	require.NoError(t, err)
	assert.Same(t, created, p)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
}

// completedReservationWithID is completedReservation with a fixed id
func (f *paymentFixture) completedReservationWithID(id uuid.UUID) *models.Reservation {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r := &models.Reservation{
		ID:        id,
		UserID:    uuid.New(),
		SpotID:    uuid.New(),
		StartTime: start,
		EndTime:   null.TimeFrom(start.Add(90 * time.Minute)),
		Status:    models.ReservationStatusCompleted,
	}
	f.reservations.EXPECT().GetByID(gomock.Any(), id).Return(r, nil)
	f.spots.EXPECT().GetSpot(gomock.Any(), r.SpotID).
		Return(&models.ParkingSpot{ID: r.SpotID, HourlyRate: decimal.RequireFromString("10.00")}, nil)
	return r
}

func TestProcessPayment_AlreadyPaid(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).
		Return(&models.Payment{Status: models.PaymentStatusCompleted}, nil)

	_, err := f.uc.ProcessPayment(context.Background(), id)

	assert.ErrorIs(t, err, apperror.ErrPaymentAlreadyExists)
	assert.Equal(t, apperror.KindStateConflict, apperror.KindOf(err))
}

func TestProcessPayment_CannotAfford(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)
	r := f.completedReservationWithID(id)
	f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, gomock.Any()).Return(false)

	_, err := f.uc.ProcessPayment(context.Background(), id)

	assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
}

func TestProcessPayment_WithdrawFailsMarksFailed(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)
	r := f.completedReservationWithID(id)
	f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, gomock.Any()).Return(true)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.runInline()
	f.wallet.EXPECT().Withdraw(gomock.Any(), r.UserID, gomock.Any()).Return(nil, apperror.ErrInsufficientBalance)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusFailed).Return(nil)

	p, err := f.uc.ProcessPayment(context.Background(), id)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrPaymentProcessing)
	assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	assert.Equal(t, apperror.KindProcessingFailure, apperror.KindOf(err))
}

func TestProcessPayment_CompleteFailsMarksFailed(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)
	r := f.completedReservationWithID(id)
	f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, gomock.Any()).Return(true)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.runInline()
	f.wallet.EXPECT().Withdraw(gomock.Any(), r.UserID, gomock.Any()).Return(&models.Wallet{}, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusCompleted).
		Return(errors.New("connection reset"))
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusFailed).Return(nil)

	_, err := f.uc.ProcessPayment(context.Background(), id)

	assert.ErrorIs(t, err, apperror.ErrPaymentProcessing)
	assert.Equal(t, "payment processing failed", apperror.PublicMessage(err))
}

func TestProcessPayment_NotificationFailureIsNonFatal(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)
	r := f.completedReservationWithID(id)
	f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, gomock.Any()).Return(true)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.runInline()
	f.wallet.EXPECT().Withdraw(gomock.Any(), r.UserID, gomock.Any()).Return(&models.Wallet{}, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusCompleted).Return(nil)
	f.users.EXPECT().GetUser(gomock.Any(), r.UserID).Return(&models.User{Email: "ana@example.com"}, nil)
	f.notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), "ana@example.com", gomock.Any()).
		Return(errors.New("nats: timeout"))

	p, err := f.uc.ProcessPayment(context.Background(), id)

	require.NotNil(t, p)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
	assert.ErrorIs(t, err, apperror.ErrNotificationFailed)
}

func TestGetPaymentByReservation(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetLatestByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)

	_, err := f.uc.GetPaymentByReservation(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
}

func TestProcessPayment_MarksFailedAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newPaymentFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetActiveByReservation(gomock.Any(), id).Return(nil, apperror.ErrPaymentNotFound)
	r := f.completedReservationWithID(id)
	f.wallet.EXPECT().CanAfford(gomock.Any(), r.UserID, gomock.Any()).Return(true)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.runInline()
	f.wallet.EXPECT().Withdraw(gomock.Any(), r.UserID, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, decimal.Decimal) (*models.Wallet, error) {
			cancel()
			return nil, context.Canceled
		})
	var markErr error
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.PaymentStatusPending, models.PaymentStatusFailed).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _, _ models.PaymentStatus) error {
			markErr = ctx.Err()
			return markErr
		})

	p, err := f.uc.ProcessPayment(ctx, id)

	assert.NoError(t, markErr)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrPaymentProcessing)
	assert.ErrorIs(t, err, context.Canceled)
}

// memPayments keeps payment rows in memory and honours status swaps
type memPayments struct {
	rows          []*models.Payment
	failCompleted int
}

func (m *memPayments) Create(_ context.Context, p *models.Payment) error {
	row := *p
	m.rows = append(m.rows, &row)
	return nil
}

func (m *memPayments) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.PaymentStatus) error {
	if to == models.PaymentStatusCompleted && m.failCompleted > 0 {
		m.failCompleted--
		return errors.New("connection reset")
	}
	for _, row := range m.rows {
		if row.ID == id && row.Status == from {
			row.Status = to
			return nil
		}
	}
	return apperror.ErrPaymentNotFound
}

func (m *memPayments) GetActiveByReservation(_ context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	for _, row := range m.rows {
		if row.ReservationID == reservationID && row.Status != models.PaymentStatusFailed {
			return row, nil
		}
	}
	return nil, apperror.ErrPaymentNotFound
}

func (m *memPayments) GetLatestByReservation(context.Context, uuid.UUID) (*models.Payment, error) {
	return nil, apperror.ErrPaymentNotFound
}

func (m *memPayments) ListByUser(context.Context, uuid.UUID) ([]*models.Payment, error) {
	return m.rows, nil
}

func (m *memPayments) count(status models.PaymentStatus) int {
	n := 0
	for _, row := range m.rows {
		if row.Status == status {
			n++
		}
	}
	return n
}

// memWallet is a single-user ledger whose debits honour balance >= amount
type memWallet struct {
	balance decimal.Decimal
	debits  int
}

func (w *memWallet) GetBalance(context.Context, uuid.UUID) (decimal.Decimal, error) {
	return w.balance, nil
}

func (w *memWallet) Deposit(_ context.Context, _ uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	w.balance = w.balance.Add(amount)
	return &models.Wallet{Balance: w.balance}, nil
}

func (w *memWallet) Withdraw(_ context.Context, _ uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	if w.balance.LessThan(amount) {
		return nil, apperror.ErrInsufficientBalance
	}
	w.balance = w.balance.Sub(amount)
	w.debits++
	return &models.Wallet{Balance: w.balance}, nil
}

func (w *memWallet) CanAfford(_ context.Context, _ uuid.UUID, amount decimal.Decimal) bool {
	return !w.balance.LessThan(amount)
}

func (w *memWallet) CreateWallet(context.Context, uuid.UUID, decimal.Decimal) (*models.Wallet, error) {
	return &models.Wallet{Balance: w.balance}, nil
}

func (w *memWallet) GetTransactions(context.Context, uuid.UUID) ([]*models.WalletTransaction, error) {
	return nil, nil
}

// rollbackTransactor restores the wallet and payment rows when fn fails
type rollbackTransactor struct {
	wallet   *memWallet
	payments *memPayments
}

func (tx *rollbackTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	balance, debits := tx.wallet.balance, tx.wallet.debits
	statuses := make([]models.PaymentStatus, len(tx.payments.rows))
	for i, row := range tx.payments.rows {
		statuses[i] = row.Status
	}

	if err := fn(ctx); err != nil {
		tx.wallet.balance, tx.wallet.debits = balance, debits
		for i, row := range tx.payments.rows[:len(statuses)] {
			row.Status = statuses[i]
		}
		return err
	}
	return nil
}

func TestProcessPayment_RetryAfterFailedCompletionChargesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := mocks.NewMockReservationReader(ctrl)
	spots := mocks.NewMockSpotReader(ctrl)
	users := mocks.NewMockUserReader(ctrl)
	notifier := notificationmocks.NewMockNotifier(ctrl)

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r := &models.Reservation{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		SpotID:    uuid.New(),
		StartTime: start,
		EndTime:   null.TimeFrom(start.Add(2 * time.Hour)),
		Status:    models.ReservationStatusCompleted,
	}
	reservations.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil).Times(2)
	spots.EXPECT().GetSpot(gomock.Any(), r.SpotID).
		Return(&models.ParkingSpot{ID: r.SpotID, HourlyRate: decimal.RequireFromString("10.00")}, nil).Times(2)
	users.EXPECT().GetUser(gomock.Any(), r.UserID).Return(&models.User{Email: "ana@example.com"}, nil)
	notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), "ana@example.com", decEq("20.00")).Return(nil)

	payments := &memPayments{failCompleted: 1}
	wallet := &memWallet{balance: decimal.RequireFromString("100.00")}
	uc := NewPaymentUC(&models.Config{}, payments, reservations, spots, users, wallet, notifier,
		&rollbackTransactor{wallet: wallet, payments: payments}, logger.NewNop())

	_, err := uc.ProcessPayment(context.Background(), r.ID)
	require.ErrorIs(t, err, apperror.ErrPaymentProcessing)
	assert.True(t, decimal.RequireFromString("100.00").Equal(wallet.balance), "failed attempt kept %s", wallet.balance)

	p, err := uc.ProcessPayment(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)

	assert.Equal(t, 1, wallet.debits)
	assert.True(t, decimal.RequireFromString("80.00").Equal(wallet.balance), "got %s", wallet.balance)
	assert.Equal(t, 1, payments.count(models.PaymentStatusCompleted))
	assert.Equal(t, 1, payments.count(models.PaymentStatusFailed))

	_, err = uc.ProcessPayment(context.Background(), r.ID)
	assert.ErrorIs(t, err, apperror.ErrPaymentAlreadyExists)
}
