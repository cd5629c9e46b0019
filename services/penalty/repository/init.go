package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/penalty"
)

// PenaltyRepo implements the penalty repository on PostgreSQL
type PenaltyRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPenaltyRepository creates a new penalty repository
func NewPenaltyRepository(cfg *models.Config, db *sqlx.DB) penalty.PenaltyRepo {
	return &PenaltyRepo{
		cfg: cfg,
		db:  db,
	}
}
