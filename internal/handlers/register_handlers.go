package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/acmebank/acmebank/internal/core/domain"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/middleware"
	"github.com/acmebank/acmebank/internal/platform/config"
)

// RegisterRoutes sets up all application routes on the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerBindingValidations()

	home := &HomeHandler{}
	r.GET("/", home.Home)
	r.GET("/health", home.Health)

	registerAuthRoutes(r, cfg, services)

	authed := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerSessionRoutes(authed, services.Session)
		registerLedgerRoutes(authed, services.Ledger)
		registerReportingRoutes(authed, services.Reporting, cfg.RecentTransactions)
	}
}

// registerBindingValidations wires the custom struct-tag validations used by
// the request DTOs into gin's binding engine.
func registerBindingValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("utilityservice", func(fl validator.FieldLevel) bool {
		return domain.UtilityService(fl.Field().String()).Valid()
	})
}
