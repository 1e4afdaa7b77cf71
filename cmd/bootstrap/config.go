package bootstrap

import (
	"log/slog"

	"travel-broker/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records which optional integrations are active. Credentials are never logged.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.Bool("broadcast", cfg.Notify.BroadcastAddress != ""),
		slog.Bool("kafka", cfg.Notify.KafkaEnabled()),
		slog.Bool("redis_dedup", cfg.Notify.RedisEnabled()),
		slog.Duration("dedup_ttl", cfg.Notify.DedupTTL),
		slog.Bool("reconcile", cfg.Reconcile.Enabled),
		slog.Duration("reconcile_stale_after", cfg.Reconcile.StaleAfter))
}
