package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// Create appends a penalty row
func (r *PenaltyRepo) Create(ctx context.Context, p *models.Penalty) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO penalties (id, reservation_id, amount, reason, created_at)
		VALUES (:id, :reservation_id, :amount, :reason, :created_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, p); err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}
	return nil
}

// ListByUser returns the penalties charged on the user's reservations
func (r *PenaltyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Penalty, error) {
	query := `
		SELECT p.id, p.reservation_id, p.amount, p.reason, p.created_at
		FROM penalties p
		JOIN reservations r ON r.id = p.reservation_id
		WHERE r.user_id = $1
		ORDER BY p.created_at, p.id
	`

	var penalties []*models.Penalty
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &penalties, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user penalties: %w", err)
	}
	return penalties, nil
}

// ListByReservation returns the penalties charged on one reservation
func (r *PenaltyRepo) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*models.Penalty, error) {
	query := `
		SELECT id, reservation_id, amount, reason, created_at
		FROM penalties
		WHERE reservation_id = $1
		ORDER BY created_at, id
	`

	var penalties []*models.Penalty
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &penalties, query, reservationID); err != nil {
		return nil, fmt.Errorf("failed to list reservation penalties: %w", err)
	}
	return penalties, nil
}
