package handlers

import (
	"log/slog"
	"net/http"

	"github.com/appdotbuilder/finops-audit-app/cmd/docs"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/middleware"
	"github.com/appdotbuilder/finops-audit-app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if cfg.FrontendBaseURL != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services.Auth, services.User); err != nil {
		return err
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	if cfg.RateLimit != "" {
		lim, err := middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		v1.Use(middleware.RateLimit(lim))
	}

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Account)
	registerPartnerRoutes(v1, services.Partner, services.CapitalMovement)
	registerEmployeeRoutes(v1, services.Employee)
	registerFxRateRoutes(v1, services.FxRate)
	registerPeriodRoutes(v1, services.Period)
	registerJournalRoutes(v1, services.Journal)
	registerCapitalMovementRoutes(v1, services.CapitalMovement)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	slog.Debug("Swagger UI enabled", slog.String("path", "/swagger/index.html"))
}
