package bootstrap

import (
	"context"
	"log/slog"

	"travel-broker/internal/infra/notifier"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/pkg/config"
	"travel-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotificationSender,
	),
)

// NewNotificationSender picks Kafka when brokers are configured and logs otherwise.
// Redis backs cross-replica dedup when configured; a process-local claimer is used otherwise.
func NewNotificationSender(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.NotificationSender {
	var transport shared.NotificationSender
	if cfg.Notify.KafkaEnabled() {
		writer := notifier.NewKafkaWriter(cfg.Notify)
		kafkaSender := notifier.NewKafkaSender(writer, logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kafkaSender.Close()
			},
		})
		transport = kafkaSender
		logger.Info("notifications go to kafka", slog.String("topic", cfg.Notify.KafkaTopic))
	} else {
		transport = notifier.NewLogSender(logger)
		logger.Warn("NOTIFY_KAFKA_BROKERS not set, notifications are only logged")
	}

	var claimer notifier.Claimer
	if cfg.Notify.RedisEnabled() {
		client := notifier.NewRedisClient(cfg.Notify)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		claimer = notifier.NewRedisClaimer(client, cfg.Notify.DedupTTL)
	} else {
		claimer = notifier.NewMemoryClaimer(cfg.Notify.DedupTTL, clk)
	}

	return notifier.NewDedupSender(transport, claimer, logger)
}
