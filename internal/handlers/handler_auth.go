package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
	"github.com/cyberledger/cyberledger_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles the PIN unlock request.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the unlock route. Rate limited per IP so the
// 4-digit PIN space cannot be walked.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	rate, err := limiter.NewRateFromFormatted(cfg.UnlockRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/unlock", middleware.RateLimit(ipLimiter), h.unlock)
	}
}

func (h *authHandler) unlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for unlock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Unlock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong PIN"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to unlock session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlock"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerSessionRoutes exposes the session probe inside the protected group,
// so a stored token can be checked without side effects.
func registerSessionRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade) {
	h := newAuthHandler(as)
	rg.GET("/auth/session", h.session)
}

// session reports who holds the current session. Behind the auth middleware a
// stale token never reaches here, so the SPA probes this on load to decide
// whether to show the PIN pad.
func (h *authHandler) session(c *gin.Context) {
	subject, _ := middleware.GetSessionSubjectFromContext(c)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Subject:     subject,
		PinRequired: h.authService.PinConfigured(),
	})
}
