package server

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/statuschecks"
)

// RouterDeps groups the handlers and middleware backends the router mounts.
type RouterDeps struct {
	Config           config.Config
	PortfolioHandler *portfolio.Handler
	StatusHandler    *statuschecks.Handler
	HealthHandler    *health.Handler
	Metrics          *metrics.Recorder
	Limiter          middleware.Limiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID(), middleware.Logging())
	// Metrics wraps Recovery so recovered panics are counted as 500s.
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: middleware.StatusWriteGroup,
		Limiter:  deps.Limiter,
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupStatusWrite: {
				Rate:  deps.Config.StatusRateLimit,
				Burst: deps.Config.StatusRateBurst,
			},
		},
	}))

	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(api)
	}
	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterRoutes(api)
	}
	if deps.StatusHandler != nil {
		deps.StatusHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
