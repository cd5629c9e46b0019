package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/services/penalty"
	httpHandler "github.com/piresc/parkspot/services/penalty/handler/http"
)

// Handler groups the penalty transports
type Handler struct {
	penaltyHTTP *httpHandler.PenaltyHandler
}

// NewHandler creates a new penalty handler
func NewHandler(penaltyUC penalty.PenaltyUC, log *logger.ZapLogger) *Handler {
	return &Handler{
		penaltyHTTP: httpHandler.NewPenaltyHandler(penaltyUC, log),
	}
}

// RegisterRoutes registers the penalty routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	penalties := api.Group("/penalties")
	penalties.POST("", h.penaltyHTTP.ApplyPenalty)
	penalties.GET("/user/:userID", h.penaltyHTTP.GetUserPenalties)
	penalties.GET("/reservation/:reservationID", h.penaltyHTTP.GetReservationPenalties)
}
