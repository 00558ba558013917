package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/jrslyce/equip-detail/internal/database"
	"github.com/jrslyce/equip-detail/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	DBPool  database.Pool
	LogFile *os.File
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Database pool (release connections)
// 3. Log file (flushed last so shutdown itself is logged)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		_ = components.LogFile.Close()
	}
}
