package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/services/user"
	httpHandler "github.com/piresc/parkspot/services/user/handler/http"
)

// Handler groups the user transports
type Handler struct {
	userHTTP *httpHandler.UserHandler
}

// NewHandler creates a new user handler
func NewHandler(userUC user.UserUC, log *logger.ZapLogger) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC, log),
	}
}

// RegisterRoutes registers the user routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	users := api.Group("/users")
	users.POST("", h.userHTTP.RegisterUser)
	users.GET("/:id", h.userHTTP.GetUser)
	users.PUT("/:id", h.userHTTP.UpdateUser)
}
