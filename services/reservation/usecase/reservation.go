package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"gopkg.in/guregu/null.v4"
)

const (
	minTimeoutMinutes = 1
	maxTimeoutMinutes = 60
)

// CreateReservation books a free spot for a user. The spot is claimed before
// the reservation row is written and released again if the write fails.
func (uc *ReservationUC) CreateReservation(ctx context.Context, userID, spotID uuid.UUID, timeoutMinutes int) (*models.Reservation, error) {
	if timeoutMinutes < minTimeoutMinutes || timeoutMinutes > maxTimeoutMinutes {
		return nil, apperror.ErrInvalidTimeout
	}

	u, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.spots.ValidateSpotForUser(ctx, spotID, u.IsEVUser); err != nil {
		return nil, err
	}

	if err := uc.spots.SetOccupied(ctx, spotID, true); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	res := &models.Reservation{
		ID:                   uuid.New(),
		UserID:               userID,
		SpotID:               spotID,
		StartTime:            now,
		Status:               models.ReservationStatusPending,
		CancellationDeadline: now.Add(time.Duration(timeoutMinutes) * time.Minute),
		CreatedAt:            now,
	}

	if err := uc.reservationRepo.Create(ctx, res); err != nil {
		uc.releaseSpot(ctx, res)
		return nil, err
	}

	uc.logger.Info("Reservation created",
		logger.UUID("reservation_id", res.ID),
		logger.UUID("user_id", userID),
		logger.UUID("spot_id", spotID),
		logger.Time("cancellation_deadline", res.CancellationDeadline))
	return res, nil
}

// ConfirmReservation moves a Pending reservation to Confirmed and sends the
// owner a confirmation. A failed confirmation is logged only.
func (uc *ReservationUC) ConfirmReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	res, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != models.ReservationStatusPending {
		return nil, apperror.ErrInvalidTransition
	}

	if err := uc.reservationRepo.UpdateStatus(ctx, id, models.ReservationStatusPending, models.ReservationStatusConfirmed, null.Time{}); err != nil {
		return nil, err
	}
	res.Status = models.ReservationStatusConfirmed

	if err := uc.notifyConfirmed(ctx, res); err != nil {
		uc.logger.Warn("Reservation confirmation not sent",
			logger.UUID("reservation_id", id),
			logger.Err(err))
	}
	return res, nil
}

func (uc *ReservationUC) notifyConfirmed(ctx context.Context, res *models.Reservation) error {
	u, err := uc.users.GetUser(ctx, res.UserID)
	if err != nil {
		return err
	}
	spot, err := uc.spots.GetSpot(ctx, res.SpotID)
	if err != nil {
		return err
	}
	return uc.notifier.SendReservationConfirmation(ctx, u.Email, spot.SpotNumber)
}

// CancelReservation cancels a non-terminal reservation. Cancelling after the
// deadline charges the late cancellation penalty; if that charge fails the
// reservation stays cancelled and the penalty error is returned with it.
func (uc *ReservationUC) CancelReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	res, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status.IsTerminal() {
		return nil, apperror.ErrInvalidTransition
	}
	return uc.cancel(ctx, res, models.PenaltyReasonLateCancellation)
}

// cancel returns a nil reservation only when the status swap did not happen
func (uc *ReservationUC) cancel(ctx context.Context, res *models.Reservation, reason string) (*models.Reservation, error) {
	late := res.IsLate(uc.now())

	if err := uc.reservationRepo.UpdateStatus(ctx, res.ID, res.Status, models.ReservationStatusCancelled, null.Time{}); err != nil {
		return nil, err
	}
	res.Status = models.ReservationStatusCancelled
	uc.releaseSpot(ctx, res)

	uc.logger.Info("Reservation cancelled",
		logger.UUID("reservation_id", res.ID),
		logger.Bool("late", late))

	if late {
		if _, err := uc.penaltyUC.ApplyPenalty(ctx, res.ID, uc.cfg.Reservation.LateCancellationPenalty, reason); err != nil {
			return res, err
		}
	}
	return res, nil
}

// CompleteReservation ends a non-terminal reservation now
func (uc *ReservationUC) CompleteReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	res, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status.IsTerminal() {
		return nil, apperror.ErrInvalidTransition
	}

	end := uc.now().UTC()
	if !end.After(res.StartTime) {
		return nil, apperror.ErrInvalidTransition
	}

	endTime := null.TimeFrom(end)
	if err := uc.reservationRepo.UpdateStatus(ctx, id, res.Status, models.ReservationStatusCompleted, endTime); err != nil {
		return nil, err
	}
	res.Status = models.ReservationStatusCompleted
	res.EndTime = endTime
	uc.releaseSpot(ctx, res)

	uc.logger.Info("Reservation completed",
		logger.UUID("reservation_id", id),
		logger.Duration("parked", end.Sub(res.StartTime)))
	return res, nil
}

// GetReservation returns a reservation by id
func (uc *ReservationUC) GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	return uc.reservationRepo.GetByID(ctx, id)
}

// GetUserReservations returns a user's reservations, newest first
func (uc *ReservationUC) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	return uc.reservationRepo.ListByUser(ctx, userID)
}

// CheckAndApplyTimeoutPenalties cancels every Pending reservation past its
// deadline and charges the timeout penalty. It returns how many reservations
// this run cancelled; reservations another caller moved first are skipped.
func (uc *ReservationUC) CheckAndApplyTimeoutPenalties(ctx context.Context) (int, error) {
	expired, err := uc.reservationRepo.ListExpiredPending(ctx, uc.now().UTC())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, res := range expired {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		cancelled, err := uc.cancel(ctx, res, models.PenaltyReasonTimeout)
		if cancelled != nil {
			processed++
		}

		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrInvalidTransition):
			uc.logger.Debug("Reservation already moved on",
				logger.UUID("reservation_id", res.ID))
		case cancelled != nil:
			uc.logger.Warn("Timeout penalty not applied",
				logger.UUID("reservation_id", res.ID),
				logger.UUID("user_id", res.UserID),
				logger.Err(err))
		default:
			uc.logger.Error("Failed to expire reservation",
				logger.UUID("reservation_id", res.ID),
				logger.Err(err))
		}
	}

	return processed, nil
}

// releaseSpot follows a committed transition, so it must not be skipped when
// ctx is cancelled.
func (uc *ReservationUC) releaseSpot(ctx context.Context, res *models.Reservation) {
	if err := uc.spots.SetOccupied(context.WithoutCancel(ctx), res.SpotID, false); err != nil {
		uc.logger.Warn("Failed to release parking spot",
			logger.UUID("spot_id", res.SpotID),
			logger.UUID("reservation_id", res.ID),
			logger.Err(err))
	}
}
