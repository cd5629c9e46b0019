package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/spot"
)

// SpotHandler handles HTTP requests for parking spots
type SpotHandler struct {
	spotUC spot.SpotUC
	logger *logger.ZapLogger
}

// NewSpotHandler creates a new spot HTTP handler
func NewSpotHandler(spotUC spot.SpotUC, log *logger.ZapLogger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: log,
	}
}

// CreateSpot registers a parking spot
func (h *SpotHandler) CreateSpot(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Spot.CreateSpot")

	var req models.CreateSpotRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	s, err := h.spotUC.CreateSpot(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Parking spot created successfully", s)
}

// GetSpot returns a parking spot
func (h *SpotHandler) GetSpot(c echo.Context) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	s, err := h.spotUC.GetSpot(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Parking spot retrieved successfully", s)
}

// ListSpots lists every spot
func (h *SpotHandler) ListSpots(c echo.Context) error {
	spots, err := h.spotUC.ListSpots(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Spots retrieved successfully", spots)
}

// ListAvailableSpots lists free spots, filtered by the optional type query parameter
func (h *SpotHandler) ListAvailableSpots(c echo.Context) error {
	spots, err := h.spotUC.ListAvailableSpots(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Available spots retrieved successfully", spots)
}
