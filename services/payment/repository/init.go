package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/payment"
)

// PaymentRepo implements the payment repository on PostgreSQL
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) payment.PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}
