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

// settingsHandler covers the small configuration collections (quick adds,
// tags, price dictionaries) and backup export/import.
type settingsHandler struct {
	configService      portssvc.ConfigSvcFacade
	transactionService portssvc.TransactionSvcFacade
	snapshotService    portssvc.SnapshotSvcFacade
}

func newSettingsHandler(cs portssvc.ConfigSvcFacade, ts portssvc.TransactionSvcFacade, ss portssvc.SnapshotSvcFacade) *settingsHandler {
	return &settingsHandler{configService: cs, transactionService: ts, snapshotService: ss}
}

// registerSettingsRoutes registers quick adds, tags, the price dictionaries,
// and the backup endpoints.
func registerSettingsRoutes(rg *gin.RouterGroup, cs portssvc.ConfigSvcFacade, ts portssvc.TransactionSvcFacade, ss portssvc.SnapshotSvcFacade) {
	h := newSettingsHandler(cs, ts, ss)

	quickadds := rg.Group("/quickadds")
	{
		quickadds.POST("", h.createQuickAdd)
		quickadds.GET("", h.listQuickAdds)
		quickadds.DELETE("/:id", h.deleteQuickAdd)
		quickadds.POST("/:id/fire", h.fireQuickAdd)
	}

	tags := rg.Group("/tags")
	{
		tags.POST("", h.createTag)
		tags.GET("", h.listTags)
		tags.DELETE("/:id", h.deleteTag)
	}

	autodl := rg.Group("/autodl-prices")
	{
		autodl.POST("", h.createAutoDLPrice)
		autodl.GET("", h.listAutoDLPrices)
		autodl.DELETE("/:id", h.deleteAutoDLPrice)
	}

	apiModels := rg.Group("/api-models")
	{
		apiModels.POST("", h.createAPIModel)
		apiModels.GET("", h.listAPIModels)
		apiModels.DELETE("/:id", h.deleteAPIModel)
	}

	rg.GET("/export", h.exportBackup)
	rg.POST("/import", h.importBackup)
}

// --- quick adds ---

func (h *settingsHandler) createQuickAdd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	qa, err := h.configService.CreateQuickAdd(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create quick add", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quick add"})
		}
		return
	}
	c.JSON(http.StatusCreated, qa)
}

func (h *settingsHandler) listQuickAdds(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.ListQuickAdds(c.Request.Context()))
}

func (h *settingsHandler) deleteQuickAdd(c *gin.Context) {
	if err := h.configService.DeleteQuickAdd(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quick add not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quick add"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// fireQuickAdd appends a transaction from the template, dated today.
func (h *settingsHandler) fireQuickAdd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	tx, err := h.transactionService.FireQuickAdd(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quick add not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to fire quick add", slog.String("error", err.Error()), slog.String("quick_add_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fire quick add"})
		}
		return
	}

	names := h.configService.NameIndex(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*tx, names))
}

// --- tags ---

func (h *settingsHandler) createTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tag, err := h.configService.CreateTag(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *settingsHandler) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.ListTags(c.Request.Context()))
}

func (h *settingsHandler) deleteTag(c *gin.Context) {
	if err := h.configService.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- price dictionaries ---

func (h *settingsHandler) createAutoDLPrice(c *gin.Context) {
	var req dto.CreateAutoDLPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	price, err := h.configService.CreateAutoDLPrice(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create price entry"})
		return
	}
	c.JSON(http.StatusCreated, price)
}

func (h *settingsHandler) listAutoDLPrices(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.ListAutoDLPrices(c.Request.Context()))
}

func (h *settingsHandler) deleteAutoDLPrice(c *gin.Context) {
	if err := h.configService.DeleteAutoDLPrice(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Price entry not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete price entry"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *settingsHandler) createAPIModel(c *gin.Context) {
	var req dto.CreateAPIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	model, err := h.configService.CreateAPIModel(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create model entry"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

func (h *settingsHandler) listAPIModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.ListAPIModels(c.Request.Context()))
}

func (h *settingsHandler) deleteAPIModel(c *gin.Context) {
	if err := h.configService.DeleteAPIModel(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Model entry not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete model entry"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- backup ---

// exportBackup returns the whole ledger state inside the versioned envelope.
func (h *settingsHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	backup, err := h.snapshotService.Export(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}
	c.JSON(http.StatusOK, backup)
}

// importBackup replaces the whole ledger state. Last writer wins; there is
// no merging of concurrent edits.
func (h *settingsHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var backup domain.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup format: " + err.Error()})
		return
	}

	if err := h.snapshotService.Import(c.Request.Context(), backup); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import backup"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
