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
)

// subscriptionHandler handles subscription management and the due-list.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

// registerSubscriptionRoutes registers routes related to subscriptions.
func registerSubscriptionRoutes(rg *gin.RouterGroup, ss portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(ss)

	subscriptions := rg.Group("/subscriptions")
	{
		subscriptions.POST("", h.createSubscription)
		subscriptions.GET("", h.listSubscriptions)
		subscriptions.GET("/due", h.dueSoon)
		subscriptions.DELETE("/:id", h.deleteSubscription)
		subscriptions.POST("/:id/renew", h.renewSubscription)
	}
}

func (h *subscriptionHandler) createSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create subscription", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(*sub))
}

func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSubscriptionResponses(h.subscriptionService.ListSubscriptions(c.Request.Context())))
}

// dueSoon lists subscriptions due within a week or overdue within a year,
// most urgent first.
func (h *subscriptionHandler) dueSoon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	due, err := h.subscriptionService.DueSoon(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute due subscriptions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list due subscriptions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDueSubscriptionResponses(due))
}

func (h *subscriptionHandler) deleteSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			logger.Error("Failed to delete subscription", slog.String("error", err.Error()), slog.String("subscription_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// renewSubscription appends the charge and advances the next pay date by one
// cycle.
func (h *subscriptionHandler) renewSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	sub, err := h.subscriptionService.Renew(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to renew subscription", slog.String("error", err.Error()), slog.String("subscription_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to renew subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(*sub))
}
