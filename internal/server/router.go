package server

import (
	"io/fs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/config"
	"hello-api-go/internal/handlers"
	"hello-api-go/internal/metrics"
	"hello-api-go/internal/middleware"
)

const apiPrefix = "/api"

// Deps are the collaborators NewRouter mounts. Metrics and Static may be nil.
type Deps struct {
	Policy  config.CORSPolicy
	Hello   *handlers.HelloHandler
	Health  *handlers.HealthHandler
	Metrics *metrics.Metrics
	Static  fs.FS
	Logger  *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(d.Logger))
	router.Use(middleware.Recovery(d.Logger))

	var onReject func()
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
		onReject = d.Metrics.OriginRejected
	}

	router.Use(middleware.CORS(d.Policy, d.Logger, onReject))
	router.Use(middleware.ErrorHandler(d.Logger))

	api := router.Group(apiPrefix)
	{
		api.GET("/hello.json", d.Hello.Hello)
		api.GET("/health", d.Health.HealthCheck)
	}

	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	var noRoute []gin.HandlerFunc
	if d.Policy.SPAFallback && d.Static != nil {
		noRoute = append(noRoute, middleware.SPAFallback(d.Static, apiPrefix, d.Logger))
	}
	noRoute = append(noRoute, middleware.NotFound())
	router.NoRoute(noRoute...)

	return router
}
