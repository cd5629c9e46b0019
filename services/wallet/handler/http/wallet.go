package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
	"github.com/piresc/parkspot/internal/utils"
	"github.com/piresc/parkspot/services/wallet"
	"github.com/shopspring/decimal"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
	logger   *logger.ZapLogger
}

// NewWalletHandler creates a new wallet HTTP handler
func NewWalletHandler(walletUC wallet.WalletUC, log *logger.ZapLogger) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
		logger:   log,
	}
}

// GetBalance returns the wallet balance of a user
func (h *WalletHandler) GetBalance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.GetBalance")

	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	balance, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", models.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// Deposit credits the wallet of a user
func (h *WalletHandler) Deposit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.Deposit")

	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.WalletAmountRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	w, err := h.walletUC.Deposit(c.Request().Context(), userID, req.Amount)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit successful", w)
}

// Withdraw debits the wallet of a user
func (h *WalletHandler) Withdraw(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.Withdraw")

	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.WalletAmountRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	w, err := h.walletUC.Withdraw(c.Request().Context(), userID, req.Amount)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal successful", w)
}

// CanAfford answers whether the wallet covers the amount query parameter
func (h *WalletHandler) CanAfford(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return utils.BadRequestResponse(c, "amount must be a decimal number")
	}

	ok := h.walletUC.CanAfford(c.Request().Context(), userID, amount)
	return utils.SuccessResponse(c, http.StatusOK, "Affordability checked", map[string]interface{}{
		"user_id":    userID,
		"amount":     amount,
		"can_afford": ok,
	})
}

// GetTransactions returns the audit trail of a wallet
func (h *WalletHandler) GetTransactions(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	txs, err := h.walletUC.GetTransactions(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txs)
}
