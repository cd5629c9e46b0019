package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// CreateSpot registers a new free spot
func (uc *SpotUC) CreateSpot(ctx context.Context, req models.CreateSpotRequest) (*models.ParkingSpot, error) {
	if utf8.RuneCountInString(req.SpotNumber) < models.SpotNumberMinLength ||
		!req.SpotType.IsValid() ||
		!req.HourlyRate.IsPositive() {
		return nil, apperror.ErrInvalidSpot
	}

	s := &models.ParkingSpot{
		SpotNumber: req.SpotNumber,
		SpotType:   req.SpotType,
		HourlyRate: req.HourlyRate,
	}
	if err := uc.spotRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("Parking spot created",
		logger.UUID("spot_id", s.ID),
		logger.String("spot_number", s.SpotNumber),
		logger.String("spot_type", string(s.SpotType)))
	return s, nil
}

// GetSpot reads through the cache. Cache failures fall back to the database.
func (uc *SpotUC) GetSpot(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error) {
	cached, err := uc.cache.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("Spot cache read failed", logger.UUID("spot_id", id), logger.Err(err))
	}
	if cached != nil {
		return cached, nil
	}

	s, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, s); err != nil {
		uc.logger.Warn("Spot cache write failed", logger.UUID("spot_id", id), logger.Err(err))
	}
	return s, nil
}

// ListSpots lists every spot straight from the database
func (uc *SpotUC) ListSpots(ctx context.Context) ([]*models.ParkingSpot, error) {
	return uc.spotRepo.ListAll(ctx)
}

// ListAvailableSpots lists free spots. An empty type lists every type.
func (uc *SpotUC) ListAvailableSpots(ctx context.Context, spotType string) ([]*models.ParkingSpot, error) {
	if spotType == "" {
		return uc.spotRepo.ListAvailable(ctx, nil)
	}

	t := models.SpotType(spotType)
	if !t.IsValid() {
		return nil, apperror.ErrInvalidSpot
	}
	return uc.spotRepo.ListAvailable(ctx, &t)
}

// ValidateSpotForUser checks the spot is free and that EV spots go to EV
// users. It reads the database so occupancy is never served from cache.
func (uc *SpotUC) ValidateSpotForUser(ctx context.Context, spotID uuid.UUID, isEVUser bool) (*models.ParkingSpot, error) {
	s, err := uc.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if s.IsOccupied {
		return nil, apperror.ErrSpotNotAvailable
	}
	if s.SpotType == models.SpotTypeEV && !isEVUser {
		return nil, apperror.ErrSpotTypeMismatch
	}
	return s, nil
}

// SetOccupied claims or releases a spot and drops its cached copy
func (uc *SpotUC) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	if err := uc.spotRepo.SetOccupied(ctx, id, occupied); err != nil {
		return err
	}

	if err := uc.cache.Invalidate(ctx, id); err != nil {
		uc.logger.Warn("Spot cache invalidation failed", logger.UUID("spot_id", id), logger.Err(err))
	}
	return nil
}
