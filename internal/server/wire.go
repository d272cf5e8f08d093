package server

import (
	"io/fs"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/clock"
	"hello-api-go/internal/config"
	"hello-api-go/internal/handlers"
	"hello-api-go/internal/integration"
	"hello-api-go/internal/manager"
	"hello-api-go/internal/metrics"
	"hello-api-go/internal/repository"
	"hello-api-go/internal/service"
	"hello-api-go/web"
)

// Build wires the whole application from cfg: repository and integration
// stubs, core service, manager, handlers, metrics and router.
func Build(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	repo := repository.NewElementRepository(logger)
	client := integration.NewElementClient(logger)
	coreService := service.NewCoreService(repo, client, logger)
	mgr := manager.NewManager(coreService, logger)

	var m *metrics.Metrics
	var recorder handlers.GreetingRecorder
	if cfg.MetricsEnabled {
		m = metrics.New(nil)
		recorder = m
	}

	return NewRouter(Deps{
		Policy:  cfg.CORS,
		Hello:   handlers.NewHelloHandler(mgr, clock.NewMonotonicClock(), recorder, logger),
		Health:  handlers.NewHealthHandler(),
		Metrics: m,
		Static:  staticFS(cfg.StaticDir),
		Logger:  logger,
	})
}

func staticFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return web.StaticFS()
}
