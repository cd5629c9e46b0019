package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/user"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userUC user.UserUC
	logger *logger.ZapLogger
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC user.UserUC, log *logger.ZapLogger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: log,
	}
}

// RegisterUser registers a driver and opens their wallet
func (h *UserHandler) RegisterUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "User.RegisterUser")

	var req models.RegisterUserRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	u, err := h.userUC.RegisterUser(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", u)
}

// GetUser returns a user
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	u, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", u)
}

// UpdateUser changes a user's name and EV flag
func (h *UserHandler) UpdateUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "User.UpdateUser")

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.UpdateUserRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	u, err := h.userUC.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", u)
}
