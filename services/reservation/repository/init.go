package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/reservation"
)

// ReservationRepo implements the reservation repository on PostgreSQL
type ReservationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(cfg *models.Config, db *sqlx.DB) reservation.ReservationRepo {
	return &ReservationRepo{
		cfg: cfg,
		db:  db,
	}
}
