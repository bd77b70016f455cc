package handlers

import (
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/middleware"
	"github.com/cyberledger/cyberledger_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	// The whole group sits behind the session token, unless no PIN is
	// configured at all (ephemeral/dev mode).
	if services.Auth.PinConfigured() {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	registerSessionRoutes(v1, services.Auth)
	registerTransactionRoutes(v1, services.Transaction, services.Config)
	registerAccountRoutes(v1, services.Config, services.Balance, services.Reconciliation)
	registerCategoryRoutes(v1, services.Config)
	registerBudgetRoutes(v1, services.Config, services.Rollover, services.Balance)
	registerReimbursementRoutes(v1, services.Reimbursement, services.Config)
	registerSubscriptionRoutes(v1, services.Subscription)
	registerSettingsRoutes(v1, services.Config, services.Transaction, services.Snapshot)
}
