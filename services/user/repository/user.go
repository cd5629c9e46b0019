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
)

const emailConstraint = "users_email_key"

// Create inserts a new user
func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (id, email, full_name, is_ev_user, is_active, created_at)
		VALUES (:id, :email, :full_name, :is_ev_user, :is_active, :created_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, database.Executor(ctx, r.db), query, u); err != nil {
		if database.IsUniqueViolation(err, emailConstraint) {
			return apperror.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, full_name, is_ev_user, is_active, created_at
		FROM users
		WHERE id = $1
	`

	var u models.User
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Update changes the user's name and EV flag
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, fullName string, isEVUser bool) (*models.User, error) {
	query := `
		UPDATE users
		SET full_name = $1, is_ev_user = $2
		WHERE id = $3
		RETURNING id, email, full_name, is_ev_user, is_active, created_at
	`

	var u models.User
	if err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &u, query, fullName, isEVUser, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}
