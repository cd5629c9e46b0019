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
	"gopkg.in/guregu/null.v4"
)

const reservationColumns = `id, user_id, spot_id, start_time, end_time, status, cancellation_deadline, created_at`

// Create inserts a reservation
func (r *ReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO reservations (id, user_id, spot_id, start_time, end_time, status, cancellation_deadline, created_at)
		VALUES (:id, :user_id, :spot_id, :start_time, :end_time, :status, :cancellation_deadline, :created_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by id
func (r *ReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var res models.Reservation
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &res, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &res, nil
}

// ListByUser returns a user's reservations, newest first
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY start_time DESC, id
	`

	var reservations []*models.Reservation
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &reservations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user reservations: %w", err)
	}
	return reservations, nil
}

// UpdateStatus moves a reservation from one status to another. endTime is
// written only when valid. A row that is no longer in the from status yields
// apperror.ErrInvalidTransition.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ReservationStatus, endTime null.Time) error {
	query := `
		UPDATE reservations
		SET status = $1, end_time = COALESCE($2, end_time)
		WHERE id = $3 AND status = $4
	`
	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, to, endTime, id, from)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.ErrInvalidTransition
	}
	return nil
}

// ListExpiredPending returns Pending reservations whose cancellation
// deadline is before now
func (r *ReservationRepo) ListExpiredPending(ctx context.Context, now time.Time) ([]*models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = $1 AND cancellation_deadline < $2
		ORDER BY cancellation_deadline, id
	`

	var reservations []*models.Reservation
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &reservations, query, models.ReservationStatusPending, now); err != nil {
		return nil, fmt.Errorf("failed to list expired reservations: %w", err)
	}
	return reservations, nil
}
