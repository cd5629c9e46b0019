package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// activePaymentIndex is the partial unique index over non-Failed payments
const activePaymentIndex = "payments_active_reservation_idx"

const paymentColumns = `p.id, p.reservation_id, p.amount, p.status, p.created_at, p.updated_at`

// Create inserts a payment. A second non-Failed payment for the same
// reservation violates the partial unique index.
func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	now := time.Now().UTC()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt

	query := `
		INSERT INTO payments (id, reservation_id, amount, status, created_at, updated_at)
		VALUES (:id, :reservation_id, :amount, :status, :created_at, :updated_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, p); err != nil {
		if database.IsUniqueViolation(err, activePaymentIndex) {
			return apperror.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// UpdateStatus moves a payment from one status to another
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.ErrPaymentNotFound
	}
	return nil
}

// GetActiveByReservation returns the reservation's Pending or Completed payment
func (r *PaymentRepo) GetActiveByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.reservation_id = $1 AND p.status = ANY($2)
		ORDER BY p.created_at DESC
		LIMIT 1
	`
	active := pq.Array([]string{string(models.PaymentStatusPending), string(models.PaymentStatusCompleted)})

	var p models.Payment
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &p, query, reservationID, active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get active payment: %w", err)
	}
	return &p, nil
}

// GetLatestByReservation returns the most recent payment of any status
func (r *PaymentRepo) GetLatestByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.reservation_id = $1
		ORDER BY p.created_at DESC
		LIMIT 1
	`

	var p models.Payment
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &p, query, reservationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// ListByUser returns the payments for the user's reservations, newest first
func (r *PaymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN reservations r ON r.id = p.reservation_id
		WHERE r.user_id = $1
		ORDER BY p.created_at DESC, p.id
	`

	var payments []*models.Payment
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &payments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user payments: %w", err)
	}
	return payments, nil
}
