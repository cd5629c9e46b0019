package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/services/spot"
	httpHandler "github.com/piresc/parkspot/services/spot/handler/http"
)

// Handler groups the spot transports
type Handler struct {
	spotHTTP *httpHandler.SpotHandler
}

// NewHandler creates a new spot handler
func NewHandler(spotUC spot.SpotUC, log *logger.ZapLogger) *Handler {
	return &Handler{
		spotHTTP: httpHandler.NewSpotHandler(spotUC, log),
	}
}

// RegisterRoutes registers the spot routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	spots := api.Group("/spots")
	spots.POST("", h.spotHTTP.CreateSpot)
	spots.GET("", h.spotHTTP.ListSpots)
	spots.GET("/available", h.spotHTTP.ListAvailableSpots)
	spots.GET("/:id", h.spotHTTP.GetSpot)
}
