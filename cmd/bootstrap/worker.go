package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-broker/internal/pkg/config"
	"travel-broker/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartReconcileWorker),
)

// StartReconcileWorker periodically advances bookings whose first transition failed.
func StartReconcileWorker(lc fx.Lifecycle, cfg config.Config, reconcile commands.ReconcileCommands, logger *slog.Logger) {
	if !cfg.Reconcile.Enabled {
		logger.Info("reconcile worker disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ticker := time.NewTicker(cfg.Reconcile.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := reconcile.ReconcileStuckBookings(ctx); err != nil {
							logger.Error("reconcile pass failed", slog.String("error", err.Error()))
						}
					}
				}
			}()
			logger.Info("reconcile worker started", slog.Duration("interval", cfg.Reconcile.Interval))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
