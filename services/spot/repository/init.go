package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/parkspot/internal/pkg/database"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/spot"
)

// SpotRepo implements the spot repository on PostgreSQL
type SpotRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSpotRepository creates a new spot repository
func NewSpotRepository(cfg *models.Config, db *sqlx.DB) spot.SpotRepo {
	return &SpotRepo{
		cfg: cfg,
		db:  db,
	}
}

// SpotCache implements the spot cache on Redis
type SpotCache struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewSpotCache creates a new Redis-backed spot cache
func NewSpotCache(cfg *models.Config, redisClient *database.RedisClient) spot.SpotCache {
	return &SpotCache{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
