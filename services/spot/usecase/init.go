package usecase

import (
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/spot"
)

// SpotUC implements the spot directory
type SpotUC struct {
	cfg      *models.Config
	spotRepo spot.SpotRepo
	cache    spot.SpotCache
	logger   *logger.ZapLogger
}

// NewSpotUC creates a new spot use case
func NewSpotUC(cfg *models.Config, spotRepo spot.SpotRepo, cache spot.SpotCache, log *logger.ZapLogger) spot.SpotUC {
	return &SpotUC{
		cfg:      cfg,
		spotRepo: spotRepo,
		cache:    cache,
		logger:   log,
	}
}
