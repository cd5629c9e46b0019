package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/penalty"
)

// PenaltyHandler handles HTTP requests for penalty operations
type PenaltyHandler struct {
	penaltyUC penalty.PenaltyUC
	logger    *logger.ZapLogger
}

// NewPenaltyHandler creates a new penalty HTTP handler
func NewPenaltyHandler(penaltyUC penalty.PenaltyUC, log *logger.ZapLogger) *PenaltyHandler {
	return &PenaltyHandler{
		penaltyUC: penaltyUC,
		logger:    log,
	}
}

// ApplyPenalty applies a manual penalty to a reservation
func (h *PenaltyHandler) ApplyPenalty(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Penalty.ApplyPenalty")

	var req models.ApplyPenaltyRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	nrpkg.AddTransactionAttribute(txn, "reservation.id", req.ReservationID.String())

	p, err := h.penaltyUC.ApplyPenalty(c.Request().Context(), req.ReservationID, req.Amount, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Penalty applied successfully", p)
}

// GetUserPenalties lists the penalties of a user
func (h *PenaltyHandler) GetUserPenalties(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	penalties, err := h.penaltyUC.GetUserPenalties(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Penalties retrieved successfully", penalties)
}

// GetReservationPenalties lists the penalties of a reservation
func (h *PenaltyHandler) GetReservationPenalties(c echo.Context) error {
	reservationID, err := utils.ParseUUIDParam(c, "reservationID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	penalties, err := h.penaltyUC.GetReservationPenalties(c.Request().Context(), reservationID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Penalties retrieved successfully", penalties)
}
