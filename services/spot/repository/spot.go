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

const spotNumberConstraint = "parking_spots_spot_number_key"

// Create inserts a new parking spot
func (r *SpotRepo) Create(ctx context.Context, s *models.ParkingSpot) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO parking_spots (id, spot_number, spot_type, hourly_rate, is_occupied, created_at)
		VALUES (:id, :spot_number, :spot_type, :hourly_rate, :is_occupied, :created_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, s); err != nil {
		if database.IsUniqueViolation(err, spotNumberConstraint) {
			return apperror.ErrSpotNumberTaken
		}
		return fmt.Errorf("failed to create parking spot: %w", err)
	}
	return nil
}

// GetByID retrieves a parking spot
func (r *SpotRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error) {
	query := `
		SELECT id, spot_number, spot_type, hourly_rate, is_occupied, created_at
		FROM parking_spots
		WHERE id = $1
	`

	var s models.ParkingSpot
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get parking spot: %w", err)
	}
	return &s, nil
}

// ListAll lists every spot, occupied or not
func (r *SpotRepo) ListAll(ctx context.Context) ([]*models.ParkingSpot, error) {
	query := `
		SELECT id, spot_number, spot_type, hourly_rate, is_occupied, created_at
		FROM parking_spots
		ORDER BY spot_number
	`

	var spots []*models.ParkingSpot
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &spots, query); err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}
	return spots, nil
}

// ListAvailable lists free spots, optionally of one type
func (r *SpotRepo) ListAvailable(ctx context.Context, spotType *models.SpotType) ([]*models.ParkingSpot, error) {
	types := []string{string(models.SpotTypeRegular), string(models.SpotTypeEV)}
	if spotType != nil {
		types = []string{string(*spotType)}
	}

	query := `
		SELECT id, spot_number, spot_type, hourly_rate, is_occupied, created_at
		FROM parking_spots
		WHERE is_occupied = FALSE AND spot_type = ANY($1)
		ORDER BY spot_number
	`

	var spots []*models.ParkingSpot
	if err := sqlx.SelectContext(ctx, database.Executor(ctx, r.db), &spots, query, pq.Array(types)); err != nil {
		return nil, fmt.Errorf("failed to list available spots: %w", err)
	}
	return spots, nil
}

// SetOccupied flips occupancy only when it differs. Claiming an occupied
// spot fails; releasing a free spot is a no-op.
func (r *SpotRepo) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	exec := database.Executor(ctx, r.db)

	result, err := exec.ExecContext(ctx,
		`UPDATE parking_spots SET is_occupied = $1 WHERE id = $2 AND is_occupied <> $1`,
		occupied, id)
	if err != nil {
		return fmt.Errorf("failed to update spot occupancy: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	if err := sqlx.GetContext(ctx, exec, &exists, `SELECT EXISTS(SELECT 1 FROM parking_spots WHERE id = $1)`, id); err != nil {
		return fmt.Errorf("failed to check parking spot: %w", err)
	}
	if !exists {
		return apperror.ErrSpotNotFound
	}
	if occupied {
		return apperror.ErrSpotNotAvailable
	}
	return nil
}
