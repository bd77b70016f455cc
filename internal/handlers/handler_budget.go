package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
	"github.com/cyberledger/cyberledger_backend/internal/utils/dates"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles the budget configuration and the derived reports.
type budgetHandler struct {
	configService   portssvc.ConfigSvcFacade
	rolloverService portssvc.RolloverSvcFacade
	balanceService  portssvc.BalanceSvcFacade
}

func newBudgetHandler(cs portssvc.ConfigSvcFacade, rs portssvc.RolloverSvcFacade, bs portssvc.BalanceSvcFacade) *budgetHandler {
	return &budgetHandler{configService: cs, rolloverService: rs, balanceService: bs}
}

// registerBudgetRoutes registers the budget configuration and report routes.
func registerBudgetRoutes(rg *gin.RouterGroup, cs portssvc.ConfigSvcFacade, rs portssvc.RolloverSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newBudgetHandler(cs, rs, bs)

	budget := rg.Group("/budget")
	{
		budget.GET("", h.getBudget)
		budget.PUT("", h.updateBudget)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlyReport)
		reports.GET("/category-spends", h.categorySpends)
		reports.GET("/totals", h.totals)
	}
}

func (h *budgetHandler) getBudget(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToBudgetResponse(h.configService.GetBudget(c.Request.Context())))
}

func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.configService.UpdateBudget(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update budget", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(*budget))
}

// monthlyReport computes the budget view for ?month=YYYY-MM, defaulting to
// the current month.
func (h *budgetHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.DefaultQuery("month", dates.CurrentMonth())

	report, err := h.rolloverService.MonthlyReport(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute monthly report", slog.String("error", err.Error()), slog.String("month", month))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyBudgetResponse(report))
}

func (h *budgetHandler) categorySpends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.DefaultQuery("month", dates.CurrentMonth())

	spends, err := h.rolloverService.CategorySpends(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute category spends", slog.String("error", err.Error()), slog.String("month", month))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category spends"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySpendResponses(spends))
}

func (h *budgetHandler) totals(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTotalsResponse(h.balanceService.Totals(c.Request.Context())))
}
