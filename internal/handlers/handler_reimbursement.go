package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reimbursementHandler handles the pending list and the settle action.
type reimbursementHandler struct {
	reimbursementService portssvc.ReimbursementSvcFacade
	configService        portssvc.ConfigSvcFacade
}

func newReimbursementHandler(rs portssvc.ReimbursementSvcFacade, cs portssvc.ConfigSvcFacade) *reimbursementHandler {
	return &reimbursementHandler{reimbursementService: rs, configService: cs}
}

// registerReimbursementRoutes registers the reimbursement routes.
func registerReimbursementRoutes(rg *gin.RouterGroup, rs portssvc.ReimbursementSvcFacade, cs portssvc.ConfigSvcFacade) {
	h := newReimbursementHandler(rs, cs)

	reimbursements := rg.Group("/reimbursements")
	{
		reimbursements.GET("", h.listPending)
		reimbursements.POST("/:id/settle", h.settle)
	}
}

// pendingReimbursementsResponse carries the pending list and its sum.
type pendingReimbursementsResponse struct {
	Pending []dto.TransactionResponse `json:"pending"`
	Total   decimal.Decimal           `json:"total"`
}

func (h *reimbursementHandler) listPending(c *gin.Context) {
	pending, total := h.reimbursementService.Pending(c.Request.Context())
	names := h.configService.NameIndex(c.Request.Context())
	c.JSON(http.StatusOK, pendingReimbursementsResponse{
		Pending: dto.ToTransactionResponses(pending, names),
		Total:   total,
	})
}

// settle flips the original expense to reimbursed and returns the credit
// transaction that was appended.
func (h *reimbursementHandler) settle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txID := c.Param("id")

	credit, err := h.reimbursementService.Settle(c.Request.Context(), txID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction already settled"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to settle reimbursement", slog.String("error", err.Error()), slog.String("transaction_id", txID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle reimbursement"})
		}
		return
	}

	names := h.configService.NameIndex(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*credit, names))
}
