package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"smartcaller_backend/platform/config"
	"smartcaller_backend/platform/httpkit"
	"smartcaller_backend/platform/logger"
)

// App wires configuration, middleware and modules into one HTTP handler.
type App struct {
	cfg     config.HTTPConfig
	log     *logger.Logger
	version string
	modules []Module

	importLimiter *httpkit.ImportRateLimiter
}

// NewApp creates the application router assembler.
func NewApp(cfg config.HTTPConfig, log *logger.Logger, version string, modules ...Module) *App {
	return &App{
		cfg:           cfg,
		log:           log,
		version:       version,
		modules:       modules,
		importLimiter: httpkit.NewImportRateLimiter(log),
	}
}

// Handler builds the gin engine with all middleware and module routes.
func (a *App) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		httpkit.RequestID(),
		httpkit.RequestLogger(a.log),
		httpkit.SecurityHeaders(),
		cors.New(a.corsConfig()),
	)

	engine.GET("/", a.root)
	engine.GET("/api/health", a.health)

	ctx := RouterContext{
		Engine:          engine,
		API:             engine.Group("/api"),
		ImportRateLimit: a.importLimiter.RateLimit(),
	}
	for _, module := range a.modules {
		module.RegisterRoutes(ctx)
		a.log.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func (a *App) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "smartcaller-backend",
		"version": a.version,
	})
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (a *App) corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", httpkit.RequestIDHeader}
	corsCfg.AllowCredentials = a.cfg.GetCORSAllowCreds()

	if a.cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = a.cfg.GetCORSOrigins()
	}
	return corsCfg
}
