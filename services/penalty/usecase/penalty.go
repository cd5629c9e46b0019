package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// ApplyPenalty records a penalty and debits it from the reservation owner's
// wallet. Both happen in one transaction: if the debit fails, no penalty row
// remains.
func (uc *PenaltyUC) ApplyPenalty(ctx context.Context, reservationID uuid.UUID, amount decimal.Decimal, reason string) (*models.Penalty, error) {
	reservation, err := uc.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !amount.IsPositive() || utf8.RuneCountInString(reason) < models.PenaltyReasonMinLength {
		return nil, apperror.ErrInvalidPenalty
	}

	p := &models.Penalty{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Amount:        amount,
		Reason:        reason,
		CreatedAt:     uc.now().UTC(),
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.penaltyRepo.Create(ctx, p); err != nil {
			return err
		}
		_, err := uc.walletUC.Withdraw(ctx, reservation.UserID, amount)
		return err
	})
	if err != nil {
		uc.logger.Warn("Penalty not applied",
			logger.UUID("reservation_id", reservationID),
			logger.UUID("user_id", reservation.UserID),
			logger.Decimal("amount", amount),
			logger.String("reason", reason),
			logger.Err(err))
		return nil, err
	}

	uc.logger.Info("Penalty applied",
		logger.UUID("penalty_id", p.ID),
		logger.UUID("reservation_id", reservationID),
		logger.UUID("user_id", reservation.UserID),
		logger.Decimal("amount", amount),
		logger.String("reason", reason))
	return p, nil
}

// GetUserPenalties returns a user's penalties in insertion order
func (uc *PenaltyUC) GetUserPenalties(ctx context.Context, userID uuid.UUID) ([]*models.Penalty, error) {
	return uc.penaltyRepo.ListByUser(ctx, userID)
}

// GetReservationPenalties returns a reservation's penalties in insertion order
func (uc *PenaltyUC) GetReservationPenalties(ctx context.Context, reservationID uuid.UUID) ([]*models.Penalty, error) {
	return uc.penaltyRepo.ListByReservation(ctx, reservationID)
}
