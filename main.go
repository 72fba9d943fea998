package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pitchup/config"
	"github.com/DhavalSuthar-24/pitchup/internal/logger"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/internal/store/gormstore"
	"github.com/DhavalSuthar-24/pitchup/internal/store/memstore"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
	"github.com/DhavalSuthar-24/pitchup/routes"
	"github.com/DhavalSuthar-24/pitchup/utils"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title PitchUp REST API
// @version 1.0
// @description Pickup football: players, clubs, matches, results and peer ratings.
// @host localhost:3001
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: !cfg.IsProduction(),
	})
	defer func() { _ = logr.Sync() }()

	for _, w := range cfg.Warnings {
		logr.Warn(w)
	}

	ds, err := openStore(cfg, logr)
	if err != nil {
		logr.Fatal("failed to open data store", zap.Error(err))
	}
	defer ds.Close()

	deps := routes.Dependencies{
		Config: cfg,
		Store:  ds,
		Tokens: token.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry),
		Hasher: utils.NewHasher(cfg.Security.BcryptCost),
		Log:    logr,
	}
	services := routes.NewServices(deps)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	if err := services.Auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Nickname); err != nil {
		cancel()
		logr.Fatal("failed to bootstrap admin account", zap.Error(err))
	}
	cancel()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(deps, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env), zap.String("store", cfg.DataStore.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	ctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
}

func openStore(cfg *config.Config, logr *zap.Logger) (store.DataStore, error) {
	if cfg.DataStore.Driver == config.DriverMemory {
		logr.Warn("using in-memory data store; data is lost on restart")
		return memstore.New(), nil
	}

	gs, err := gormstore.Open(cfg.DSN(), gormstore.Options{
		LogSQL:          !cfg.IsProduction() && cfg.Log.Level == "debug",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := gs.Migrate(ctx); err != nil {
		_ = gs.Close()
		return nil, err
	}
	logr.Info("database migrated")
	return gs, nil
}
