package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/services/payment"
	httpHandler "github.com/piresc/parkspot/services/payment/handler/http"
)

// Handler groups the payment transports
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
}

// NewHandler creates a new payment handler
func NewHandler(paymentUC payment.PaymentUC, log *logger.ZapLogger) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC, log),
	}
}

// RegisterRoutes registers the payment routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	payments := api.Group("/payments")
	payments.GET("/calculate/:reservationID", h.paymentHTTP.CalculatePayment)
	payments.GET("/reservation/:reservationID", h.paymentHTTP.GetPaymentByReservation)
	payments.GET("/user/:userID", h.paymentHTTP.GetUserPayments)
	payments.POST("/:reservationID", h.paymentHTTP.ProcessPayment)
}
