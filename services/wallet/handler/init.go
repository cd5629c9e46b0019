package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/services/wallet"
	httpHandler "github.com/piresc/parkspot/services/wallet/handler/http"
)

// Handler groups the wallet transports
type Handler struct {
	walletHTTP *httpHandler.WalletHandler
}

// NewHandler creates a new wallet handler
func NewHandler(walletUC wallet.WalletUC, log *logger.ZapLogger) *Handler {
	return &Handler{
		walletHTTP: httpHandler.NewWalletHandler(walletUC, log),
	}
}

// RegisterRoutes registers the wallet routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	wallets := api.Group("/wallets")
	wallets.GET("/:userID/balance", h.walletHTTP.GetBalance)
	wallets.POST("/:userID/deposit", h.walletHTTP.Deposit)
	wallets.POST("/:userID/withdraw", h.walletHTTP.Withdraw)
	wallets.GET("/:userID/can-afford", h.walletHTTP.CanAfford)
	wallets.GET("/:userID/transactions", h.walletHTTP.GetTransactions)
}
