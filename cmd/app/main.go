package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"UltraNova/internal/config"
	"UltraNova/internal/db"
	"UltraNova/internal/digest"
	"UltraNova/internal/logger"
	"UltraNova/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize JSON logging
	zlog, err := logger.New(cfg.InstanceName, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	restore := logger.RedirectStdLog(zlog)
	defer restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx, cfg.Database.DSN()); err != nil {
			zlog.Fatal("migrations failed", zap.Error(err))
		}
		zlog.Info("migrations applied")
	}

	srv, err := server.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to create server", zap.Error(err))
	}

	job := digest.NewJob(countWaitlist(cfg.Database), zlog)
	scheduler, err := digest.Schedule(cfg.DigestSchedule, job, zlog)
	if err != nil {
		zlog.Fatal("invalid digest schedule", zap.Error(err), zap.String("schedule", cfg.DigestSchedule))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if scheduler != nil {
		g.Go(func() error { return scheduler.Run(gctx) })
	}
	if err := g.Wait(); err != nil {
		zlog.Error("server stopped", zap.Error(err))
		restore()
		zlog.Sync()
		os.Exit(1)
	}
	zlog.Info("server stopped")
}

// countWaitlist opens a short-lived connection per digest run.
func countWaitlist(cfg config.DatabaseConfig) digest.CountFunc {
	return func(ctx context.Context, since time.Time) (map[string]int, int, error) {
		conn, err := pgx.Connect(ctx, cfg.DSN())
		if err != nil {
			return nil, 0, err
		}
		defer conn.Close(ctx)
		return db.New(conn).CountWaitlistByRole(ctx, since)
	}
}
