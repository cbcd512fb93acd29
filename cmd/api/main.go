package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"smartcaller_backend/internal/dashboard"
	dashservice "smartcaller_backend/internal/dashboard/service"
	"smartcaller_backend/internal/dashboard/store"
	"smartcaller_backend/internal/events"
	apphttp "smartcaller_backend/internal/http"
	"smartcaller_backend/internal/leads"
	leadhandler "smartcaller_backend/internal/leads/handler"
	"smartcaller_backend/internal/leads/scoring"
	leadservice "smartcaller_backend/internal/leads/service"
	"smartcaller_backend/internal/sheets"
	"smartcaller_backend/platform/config"
	"smartcaller_backend/platform/logger"
	"smartcaller_backend/platform/validator"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	bus := events.NewInMemoryBus(log)

	dashSvc := dashservice.NewService(newSummaryStore(cfg, log), dashservice.RandomMetricsProvider{}, log)
	dashModule := dashboard.NewModule(dashSvc)
	dashModule.RegisterEventHandlers(bus)

	leadSvc := leadservice.NewService(sheets.NewClient(cfg), dashSvc, scoring.NewEngine(cfg), bus, log)
	leadModule := leads.NewModule(leadhandler.New(leadSvc, validator.New()))

	app := apphttp.NewApp(cfg, log, version, leadModule, dashModule)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}

// newSummaryStore picks the summary store backend. Redis is used when
// REDIS_URL is set and reachable; everything else falls back to process
// memory so the service still starts.
func newSummaryStore(cfg *config.Config, log *logger.Logger) store.SummaryStore {
	if cfg.RedisURL == "" {
		log.Info("summary store: in-memory")
		return store.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL, using in-memory store", "error", err)
		return store.NewMemoryStore()
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Error("redis unreachable, using in-memory store", "error", err)
		return store.NewMemoryStore()
	}

	log.Info("summary store: redis")
	return store.NewRedisStore(client, cfg.SummaryCacheTTL)
}
