package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

// Infrastructure groups the non-service dependencies the router needs.
// Redis, LoginLimiter and Events are optional.
type Infrastructure struct {
	Storage      Pinger
	Redis        *redis.Client
	LoginLimiter *limiter.Limiter
	Events       middleware.EventTracker
}

// NewRouter builds the gin engine with the global middleware stack and every route.
func NewRouter(logger *slog.Logger, cfg *config.Config, services *portssvc.ServiceContainer, infra Infrastructure) (*gin.Engine, error) {
	r := gin.New()

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic", slog.Any("panic", recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: internalErrorMessage})
		}),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.EventTracking(infra.Events),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	RegisterRoutes(r, cfg, services, infra)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	infra Infrastructure,
) {
	useJSONFieldNames()

	health := &healthHandler{storage: infra.Storage, redis: infra.Redis}
	r.GET("/health", health.health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Route not found"})
	})

	api := r.Group("/api", middleware.SessionAuth(services.Auth, cfg.SessionCookieName))

	registerAuthRoutes(r, api, cfg, services.Auth, infra.LoginLimiter)
	setupAPIRoutes(api, services)
}

// setupAPIRoutes delegates route registration to the entity handlers.
func setupAPIRoutes(api *gin.RouterGroup, service *portssvc.ServiceContainer) {
	registerProjectRoutes(api, service.Project, service.Task)
	registerCostRoutes(api, service.Cost, service.ChangeOrder)
	registerFieldRoutes(api, service.DailyLog, service.Document)
	registerContactRoutes(api, service.Contact)
	registerNotificationRoutes(api, service.Notification)
	registerUserRoutes(api, service.User, service.Company)
}
