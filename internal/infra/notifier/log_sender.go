package notifier

import (
	"context"
	"log/slog"

	"travel-broker/internal/domain/notification"
)

// LogSender is used when no broker is configured; every request is logged and reported delivered.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendAll(ctx context.Context, reqs []notification.Request) ([]notification.DeliveryResult, error) {
	results := make([]notification.DeliveryResult, 0, len(reqs))
	for _, r := range reqs {
		s.logger.InfoContext(ctx, "notification",
			slog.String("channel", string(r.Channel)),
			slog.String("address", r.Address),
			slog.String("role", string(r.Role)),
			slog.String("template_key", string(r.TemplateKey)))
		results = append(results, notification.DeliveryResult{Request: r, Delivered: true})
	}
	return results, nil
}
