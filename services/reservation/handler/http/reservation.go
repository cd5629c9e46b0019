package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/reservation"
)

// ReservationHandler handles HTTP requests for reservation operations
type ReservationHandler struct {
	reservationUC  reservation.ReservationUC
	defaultTimeout int
	logger         *logger.ZapLogger
}

// NewReservationHandler creates a new reservation HTTP handler
func NewReservationHandler(reservationUC reservation.ReservationUC, cfg *models.Config, log *logger.ZapLogger) *ReservationHandler {
	return &ReservationHandler{
		reservationUC:  reservationUC,
		defaultTimeout: cfg.Reservation.DefaultTimeoutMinutes,
		logger:         log,
	}
}

// CreateReservation books a spot for a user
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservation.CreateReservation")

	var req models.CreateReservationRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.TimeoutMinutes == 0 {
		req.TimeoutMinutes = h.defaultTimeout
	}

	nrpkg.AddTransactionAttribute(txn, "spot.id", req.SpotID.String())

	res, err := h.reservationUC.CreateReservation(c.Request().Context(), req.UserID, req.SpotID, req.TimeoutMinutes)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created successfully", res)
}

// GetReservation returns a reservation
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	res, err := h.reservationUC.GetReservation(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation retrieved successfully", res)
}

// GetUserReservations lists a user's reservations
func (h *ReservationHandler) GetUserReservations(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	reservations, err := h.reservationUC.GetUserReservations(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservations retrieved successfully", reservations)
}

// ConfirmReservation confirms a pending reservation
func (h *ReservationHandler) ConfirmReservation(c echo.Context) error {
	return h.transition(c, "Reservation.ConfirmReservation", "Reservation confirmed successfully", h.reservationUC.ConfirmReservation)
}

// CancelReservation cancels a reservation, charging a penalty when late
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	return h.transition(c, "Reservation.CancelReservation", "Reservation cancelled successfully", h.reservationUC.CancelReservation)
}

// CompleteReservation ends a reservation
func (h *ReservationHandler) CompleteReservation(c echo.Context) error {
	return h.transition(c, "Reservation.CompleteReservation", "Reservation completed successfully", h.reservationUC.CompleteReservation)
}

type transitionFunc func(ctx context.Context, id uuid.UUID) (*models.Reservation, error)

func (h *ReservationHandler) transition(c echo.Context, name, message string, fn transitionFunc) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "reservation.id", id.String())

	res, err := fn(c.Request().Context(), id)
	if err != nil && res != nil {
		// The transition committed; only a follow-up step such as the late
		// penalty failed.
		nrpkg.NoticeTransactionError(txn, err)
		h.logger.Warn("Reservation transition completed with a failed follow-up",
			logger.String("operation", name),
			logger.UUID("reservation_id", id),
			logger.Err(err))
		return utils.SuccessWithWarningResponse(c, http.StatusOK, message, res,
			"late cancellation penalty was not charged: "+apperror.PublicMessage(err))
	}
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		h.logger.Warn("Reservation transition failed",
			logger.String("operation", name),
			logger.UUID("reservation_id", id),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, res)
}

// TriggerTimeoutSweep runs one expiration sweep on demand
func (h *ReservationHandler) TriggerTimeoutSweep(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservation.TriggerTimeoutSweep")

	processed, err := h.reservationUC.CheckAndApplyTimeoutPenalties(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		h.logger.Error("Manual timeout sweep failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	h.logger.Info("Manual timeout sweep finished",
		logger.String("api_service", stringValue(c.Get("api_service"))),
		logger.Int("processed", processed))
	return utils.SuccessResponse(c, http.StatusOK, "Timeout sweep completed", models.SweepResult{
		Processed: processed,
		RanAt:     time.Now().UTC(),
	})
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}
