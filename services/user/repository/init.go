package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/user"
)

// UserRepo implements the user repository on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) user.UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
