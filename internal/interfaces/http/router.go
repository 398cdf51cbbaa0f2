package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentora/internal/infrastructure/auth"
	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/ratelimit"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/interfaces/http/routes"
	"rentora/internal/shared/logger"
)

// Router assembles the gin engine with all middleware and routes.
type Router struct {
	engine *gin.Engine
}

func NewRouter(cfg *config.Config, database *gorm.DB, limiter ratelimit.Limiter, log logger.Interface) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.Enabled && limiter != nil {
		engine.Use(middleware.RateLimit(limiter, cfg.RateLimit.RequestsPerMinute, log))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)

	container, err := NewContainer(database, jwtService, log)
	if err != nil {
		return nil, err
	}

	routes.SetupAuthRoutes(engine, container.AuthHandler)
	routes.SetupPropertyRoutes(engine, container.PropertyHandler, container.AuthMiddleware)
	routes.SetupBookingRoutes(engine, container.BookingHandler, container.AuthMiddleware)
	routes.SetupSubscriptionRoutes(engine, container.SubscriptionHandler, container.AuthMiddleware)
	routes.SetupAssignmentRoutes(engine, container.AssignmentHandler, container.AuthMiddleware)
	routes.SetupReportRoutes(engine, container.ReportHandler, container.AuthMiddleware)
	routes.SetupMaintenanceRoutes(engine, container.MaintenanceHandler, container.AuthMiddleware)
	routes.SetupStaffRoutes(engine, container.StaffHandler, container.AuthMiddleware)

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine, mainly for the HTTP server and
// handler tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
