// @title           Property Valuation API
// @version         1.0
// @description     Field-event API of the multi-section property valuation form.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"valuation/config"
	"valuation/handlers"
	"valuation/middleware"
	"valuation/repository"
	"valuation/storage"
	"valuation/utils"
)

func CORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "Accept", "Origin",
		"X-Requested-With", "Authorization", "Cache-Control",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// safeGo runs a background job, logging its outcome and any panic.
func safeGo(ctx context.Context, wg *sync.WaitGroup, logger *zap.Logger, name string, fn func(context.Context) error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("job panicked", zap.String("job", name), zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			}
		}()
		if err := fn(ctx); err != nil {
			logger.Error("job failed", zap.String("job", name), zap.Error(err))
			return
		}
		logger.Debug("job completed", zap.String("job", name))
	}()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	geo, err := repository.NewDefaultGeoRepository(cfg.GeoCacheTTL)
	if err != nil {
		logger.Fatal("failed to load geo hierarchy", zap.Error(err))
	}
	store := repository.NewSessionStore(geo)

	deps := handlers.Dependencies{
		Store:  store,
		Geo:    geo,
		Tokens: utils.NewTokenIssuer(cfg.EditTokenSecret, cfg.EditTokenTTL),
		Sink:   repository.LogSink{Logger: logger},
		Logger: logger,
	}

	var db *sql.DB
	if cfg.DBEnabled {
		db, err = storage.InitDB(cfg)
		if err != nil {
			logger.Fatal("database unavailable", zap.Error(err))
		}
		defer db.Close()

		changeLog, err := storage.NewChangeLog(context.Background(), db)
		if err != nil {
			logger.Fatal("failed to prepare audit log", zap.Error(err))
		}
		gormDB, err := storage.InitGormDB(cfg)
		if err != nil {
			logger.Fatal("failed to open submission store", zap.Error(err))
		}
		deps.DB = db
		deps.Audit = changeLog
		deps.Sink = repository.NewGormSubmissionRepository(gormDB)
		logger.Info("database enabled", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))
	}

	// Idle sessions are swept on a schedule.
	c := cron.New(cron.WithLogger(utils.CronLogger{Logger: logger}))
	var jobs sync.WaitGroup
	_, err = c.AddFunc(cfg.SessionSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		safeGo(ctx, &jobs, logger, "SweepIdleSessions", func(ctx context.Context) error {
			removed := store.Sweep(cfg.SessionIdleTTL)
			logger.Info("idle sessions swept", zap.Int("removed", removed), zap.Int("remaining", store.Count()))
			return ctx.Err()
		})
		jobs.Wait()
	})
	if err != nil {
		logger.Fatal("failed to schedule session sweep", zap.String("spec", cfg.SessionSweepSpec), zap.Error(err))
	}
	c.Start()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))
	r.Use(cors.New(CORSConfig(cfg.CORSOrigins)))

	handlers.RegisterRoutes(r, deps)
	r.GET("/swagger/*any", swaggerHandler(r))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	<-c.Stop().Done()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}
