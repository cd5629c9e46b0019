package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/shopspring/decimal"
)

var hour = decimal.NewFromInt(int64(time.Hour))

// ChargeFor returns round(rate * hours, 2) for the time parked between start
// and end. A non-positive duration is charged as zero hours.
func ChargeFor(rate decimal.Decimal, start, end time.Time) (hours, amount decimal.Decimal) {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	hours = decimal.NewFromInt(int64(d)).Div(hour)
	return hours, rate.Mul(hours).Round(2)
}

// CalculatePaymentAmount prices a completed reservation
func (uc *PaymentUC) CalculatePaymentAmount(ctx context.Context, reservationID uuid.UUID) (*models.PaymentQuote, error) {
	_, quote, err := uc.quote(ctx, reservationID)
	return quote, err
}

func (uc *PaymentUC) quote(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, *models.PaymentQuote, error) {
	reservation, err := uc.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, apperror.ErrReservationNotFound) {
			return nil, nil, apperror.ErrPaymentNotFound
		}
		return nil, nil, err
	}

	if !reservation.EndTime.Valid {
		return nil, nil, apperror.ErrInvalidPayment
	}

	spot, err := uc.spots.GetSpot(ctx, reservation.SpotID)
	if err != nil {
		return nil, nil, apperror.Wrap(apperror.ErrPaymentProcessing, err)
	}

	hours, amount := ChargeFor(spot.HourlyRate, reservation.StartTime, reservation.EndTime.Time)
	if !amount.IsPositive() {
		return nil, nil, apperror.ErrInvalidPayment
	}

	return reservation, &models.PaymentQuote{
		ReservationID: reservationID,
		Hours:         hours,
		HourlyRate:    spot.HourlyRate,
		Amount:        amount,
	}, nil
}

// ProcessPayment charges the reservation owner's wallet. Failures after the
// Pending row is written roll back the debit and leave the row Failed; a
// notification failure
// returns the Completed payment together with apperror.ErrNotificationFailed.
func (uc *PaymentUC) ProcessPayment(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	if _, err := uc.paymentRepo.GetActiveByReservation(ctx, reservationID); err == nil {
		return nil, apperror.ErrPaymentAlreadyExists
	} else if !errors.Is(err, apperror.ErrPaymentNotFound) {
		return nil, err
	}

	reservation, quote, err := uc.quote(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !uc.walletUC.CanAfford(ctx, reservation.UserID, quote.Amount) {
		return nil, apperror.ErrInsufficientBalance
	}

	p := &models.Payment{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Amount:        quote.Amount,
		Status:        models.PaymentStatusPending,
	}
	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	// The debit and the Completed status commit together, so a payment left
	// Failed never has money taken for it.
	err = uc.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := nrpkg.WithSegment(txCtx, "Payment.Withdraw", func() (*models.Wallet, error) {
			return uc.walletUC.Withdraw(txCtx, reservation.UserID, quote.Amount)
		})
		if err != nil {
			return err
		}
		return uc.paymentRepo.UpdateStatus(txCtx, p.ID, models.PaymentStatusPending, models.PaymentStatusCompleted)
	})
	if err != nil {
		uc.markFailed(ctx, p)
		return nil, apperror.Wrap(apperror.ErrPaymentProcessing, err)
	}
	p.Status = models.PaymentStatusCompleted

	uc.logger.Info("Payment completed",
		logger.UUID("payment_id", p.ID),
		logger.UUID("reservation_id", reservationID),
		logger.UUID("user_id", reservation.UserID),
		logger.Decimal("amount", p.Amount))

	if err := uc.notifyPaid(ctx, reservation.UserID, p.Amount); err != nil {
		uc.logger.Warn("Payment notification failed",
			logger.UUID("payment_id", p.ID),
			logger.Err(err))
		return p, apperror.Wrap(apperror.ErrNotificationFailed, err)
	}

	return p, nil
}

func (uc *PaymentUC) notifyPaid(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	u, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return uc.notifier.SendPaymentConfirmation(ctx, u.Email, amount)
}

// markFailed runs even when ctx is already cancelled, otherwise the Pending
// row would block every retry.
func (uc *PaymentUC) markFailed(ctx context.Context, p *models.Payment) {
	if err := uc.paymentRepo.UpdateStatus(context.WithoutCancel(ctx), p.ID, models.PaymentStatusPending, models.PaymentStatusFailed); err != nil {
		uc.logger.Error("Failed to mark payment as failed",
			logger.UUID("payment_id", p.ID),
			logger.Err(err))
		return
	}
	p.Status = models.PaymentStatusFailed
}

// GetPaymentByReservation returns the reservation's most recent payment
func (uc *PaymentUC) GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	return uc.paymentRepo.GetLatestByReservation(ctx, reservationID)
}

// GetUserPayments returns a user's payments, newest first
func (uc *PaymentUC) GetUserPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	return uc.paymentRepo.ListByUser(ctx, userID)
}
