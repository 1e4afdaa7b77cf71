package api

import (
	"context"
	"log/slog"

	"travel-broker/internal/domain/notification"
	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/usecase/shared"
)

// dispatch sends reqs and reports per-recipient results. Transport failures never fail the request;
// the caller already committed the state change.
func dispatch(ctx context.Context, sender shared.NotificationSender, logger *slog.Logger, reqs []notification.Request) []resdto.NotificationResponse {
	if len(reqs) == 0 {
		return []resdto.NotificationResponse{}
	}

	results, err := sender.SendAll(context.WithoutCancel(ctx), reqs)
	if err != nil {
		logger.WarnContext(ctx, "notification dispatch failed",
			slog.Int("requested", len(reqs)),
			slog.String("error", err.Error()))
	}
	if len(results) != len(reqs) {
		results = make([]notification.DeliveryResult, len(reqs))
		for i, r := range reqs {
			results[i] = notification.DeliveryResult{Request: r, Err: err}
		}
	}
	return resdto.FromDeliveryResults(results)
}
