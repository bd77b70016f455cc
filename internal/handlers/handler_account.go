package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	"github.com/cyberledger/cyberledger_backend/internal/core/domain"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for accounts, including the
// reconciliation action.
type accountHandler struct {
	configService         portssvc.ConfigSvcFacade
	balanceService        portssvc.BalanceSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newAccountHandler(cs portssvc.ConfigSvcFacade, bs portssvc.BalanceSvcFacade, rs portssvc.ReconciliationSvcFacade) *accountHandler {
	return &accountHandler{configService: cs, balanceService: bs, reconciliationService: rs}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, cs portssvc.ConfigSvcFacade, bs portssvc.BalanceSvcFacade, rs portssvc.ReconciliationSvcFacade) {
	h := newAccountHandler(cs, bs, rs)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.PUT("/:id", h.renameAccount)
		accounts.DELETE("/:id", h.deactivateAccount)
		accounts.POST("/:id/reconcile", h.reconcileAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.configService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	balance, err := h.balanceService.CurrentBalance(c.Request.Context(), account.ID)
	if err != nil {
		balance = account.Balance
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(domain.AccountBalance{Account: *account, CurrentBalance: balance}))
}

// listAccounts returns the active accounts with their replayed balances.
func (h *accountHandler) listAccounts(c *gin.Context) {
	balances := h.balanceService.AccountBalances(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToAccountResponses(balances))
}

func (h *accountHandler) renameAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.configService.RenameAccount(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to rename account", slog.String("error", err.Error()), slog.String("account_id", accountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename account"})
		}
		return
	}

	balance, berr := h.balanceService.CurrentBalance(c.Request.Context(), account.ID)
	if berr != nil {
		balance = account.Balance
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(domain.AccountBalance{Account: *account, CurrentBalance: balance}))
}

// deactivateAccount hides the account from aggregates. Nothing is deleted.
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.configService.DeactivateAccount(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// reconcileAccount accepts the user-declared balance and appends a
// calibration transaction when the ledger disagrees beyond tolerance.
func (h *accountHandler) reconcileAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.ReconcileAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	adjustment, err := h.reconciliationService.Reconcile(c.Request.Context(), accountID, req.TargetBalance)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to reconcile account", slog.String("error", err.Error()), slog.String("account_id", accountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile account"})
		}
		return
	}

	current, err := h.balanceService.CurrentBalance(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to replay balance after reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile account"})
		return
	}

	resp := dto.ReconcileAccountResponse{Adjusted: adjustment != nil, CurrentBalance: current}
	if adjustment != nil {
		names := h.configService.NameIndex(c.Request.Context())
		tr := dto.ToTransactionResponse(*adjustment, names)
		resp.Adjustment = &tr
	}
	c.JSON(http.StatusOK, resp)
}
