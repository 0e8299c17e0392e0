package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgersim/ledgersim/internal/app"
	"github.com/ledgersim/ledgersim/internal/coa"
	"github.com/ledgersim/ledgersim/internal/ledger"
	"github.com/ledgersim/ledgersim/internal/platform/kv"
	"github.com/ledgersim/ledgersim/internal/platform/notify"
	"github.com/ledgersim/ledgersim/internal/workspace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var (
		snapshots workspace.SnapshotStore
		notifier  workspace.Notifier
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.Any("error", err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		snapshots = kv.NewRedisWithClient(redisClient)
		notifier = notify.NewRedis(redisClient, logger)
	} else {
		snapshots = kv.NewMemory()
		notifier = notify.NewLog(logger)
	}

	training := workspace.New(workspace.NameTraining, coa.ModeDomestic).WithNotifier(notifier)
	production := workspace.New(workspace.NameProduction, coa.ModeERP).WithNotifier(notifier)
	if cfg.NumberSeed != 0 {
		production = production.WithNumberer(ledger.NewRangeNumberer(cfg.NumberSeed))
	}

	workspaces := []*workspace.Workspace{training, production}
	if cfg.RestoreOnStart {
		for _, ws := range workspaces {
			if err := ws.Restore(ctx, snapshots); err != nil {
				logger.Info("no saved state", slog.String("workspace", ws.Name()), slog.Any("reason", err))
			} else {
				logger.Info("workspace restored", slog.String("workspace", ws.Name()))
			}
		}
	}

	manager := workspace.NewManager(workspaces...)
	handler := workspace.NewHandler(logger, manager, snapshots)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		WorkspaceHandler: handler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}

	if cfg.SnapshotOnShutdown {
		for _, ws := range workspaces {
			if err := ws.Snapshot(shutdownCtx, snapshots); err != nil {
				logger.Error("snapshot on shutdown", slog.String("workspace", ws.Name()), slog.Any("error", err))
			}
		}
	}
}
