package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/reservation"
	httpHandler "github.com/piresc/parkspot/services/reservation/handler/http"
)

// Handler groups the reservation transports
type Handler struct {
	reservationHTTP *httpHandler.ReservationHandler
}

// NewHandler creates a new reservation handler
func NewHandler(reservationUC reservation.ReservationUC, cfg *models.Config, log *logger.ZapLogger) *Handler {
	return &Handler{
		reservationHTTP: httpHandler.NewReservationHandler(reservationUC, cfg, log),
	}
}

// RegisterRoutes registers the public reservation routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reservations := api.Group("/reservations")
	reservations.POST("", h.reservationHTTP.CreateReservation)
	reservations.GET("/user/:userID", h.reservationHTTP.GetUserReservations)
	reservations.GET("/:id", h.reservationHTTP.GetReservation)
	reservations.PATCH("/:id/confirm", h.reservationHTTP.ConfirmReservation)
	reservations.PATCH("/:id/complete", h.reservationHTTP.CompleteReservation)
	reservations.DELETE("/:id", h.reservationHTTP.CancelReservation)
}

// RegisterInternalRoutes registers the service-to-service routes. internal
// is expected to carry the API key middleware.
func (h *Handler) RegisterInternalRoutes(internal *echo.Group) {
	internal.POST("/sweeps/timeouts", h.reservationHTTP.TriggerTimeoutSweep)
}
