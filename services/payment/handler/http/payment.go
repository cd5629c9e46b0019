package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	logger    *logger.ZapLogger
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC, log *logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    log,
	}
}

// CalculatePayment quotes the charge for a completed reservation
func (h *PaymentHandler) CalculatePayment(c echo.Context) error {
	reservationID, err := utils.ParseUUIDParam(c, "reservationID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	quote, err := h.paymentUC.CalculatePaymentAmount(c.Request().Context(), reservationID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment amount calculated", quote)
}

// ProcessPayment charges a completed reservation
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.ProcessPayment")

	reservationID, err := utils.ParseUUIDParam(c, "reservationID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "reservation.id", reservationID.String())

	p, err := h.paymentUC.ProcessPayment(c.Request().Context(), reservationID)
	if err != nil {
		if p != nil && errors.Is(err, apperror.ErrNotificationFailed) {
			return utils.SuccessWithWarningResponse(c, http.StatusOK, "Payment processed successfully", p,
				"payment completed but the confirmation could not be sent")
		}
		nrpkg.NoticeTransactionError(txn, err)
		h.logger.Warn("Payment not processed",
			logger.UUID("reservation_id", reservationID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment processed successfully", p)
}

// GetPaymentByReservation returns the latest payment of a reservation
func (h *PaymentHandler) GetPaymentByReservation(c echo.Context) error {
	reservationID, err := utils.ParseUUIDParam(c, "reservationID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	p, err := h.paymentUC.GetPaymentByReservation(c.Request().Context(), reservationID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", p)
}

// GetUserPayments lists a user's payments
func (h *PaymentHandler) GetUserPayments(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	payments, err := h.paymentUC.GetUserPayments(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}
