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

	"github.com/jrslyce/equip-detail/internal/bootstrap"
	"github.com/jrslyce/equip-detail/internal/config"
	"github.com/jrslyce/equip-detail/internal/database"
	"github.com/jrslyce/equip-detail/internal/discord"
	"github.com/jrslyce/equip-detail/internal/handler"
	"github.com/jrslyce/equip-detail/internal/logger"
	"github.com/jrslyce/equip-detail/internal/profile"
	"github.com/jrslyce/equip-detail/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title equip-detail API
// @version 1.0
// @description Backend for the equip-detail Discord Activity: profiles, inventory, equipment slots and stat totals.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx := context.Background()
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	profileService := profile.NewService(repos.Profile, profile.Options{
		ValidateOwnership: cfg.ValidateOwnership,
		CacheSize:         cfg.ProfileCacheSize,
		CacheTTL:          cfg.ProfileCacheTTL,
	})

	discordClient := discord.NewClient(cfg.DiscordClientID, cfg.DiscordClientSecret)
	if !cfg.DiscordConfigured() {
		logger.Warn("Discord OAuth credentials not configured, token exchange will be rejected")
	}

	handler.InitValidator()

	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		CORSOrigins:      cfg.CORSOrigins,
		TrustedProxies:   cfg.TrustedProxies,
		DiscordPublicKey: cfg.DiscordPublicKey,
	}, dbPool, profileService, discordClient)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	case sig := <-stop:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		DBPool:  dbPool,
		LogFile: logFile,
	})
}
