package handlers

import (
	"context"
	"log/slog"

	"travel-broker/internal/domain/event"
)

// AuditLogHandler writes one structured log line per event.
type AuditLogHandler struct {
	eventName string
	logger    *slog.Logger
}

func NewAuditLogHandler(eventName string, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{eventName: eventName, logger: logger}
}

// NewAuditLogHandlers returns one audit handler per booking lifecycle event.
func NewAuditLogHandlers(logger *slog.Logger) []*AuditLogHandler {
	return []*AuditLogHandler{
		NewAuditLogHandler(event.NameBookingCreated, logger),
		NewAuditLogHandler(event.NameBookingStatusChanged, logger),
	}
}

func (h *AuditLogHandler) EventName() string { return h.eventName }
func (h *AuditLogHandler) Name() string      { return "audit_log:" + h.eventName }

func (h *AuditLogHandler) Handle(ctx context.Context, e event.Event) error {
	attrs := []any{
		slog.String("event", e.Name()),
		slog.String("event_id", e.ID().String()),
		slog.Time("occurred_at", e.OccurredAt()),
	}

	switch e.Name() {
	case event.NameBookingCreated:
		if p, err := event.PayloadAs[event.BookingCreated](e); err == nil {
			attrs = append(attrs,
				slog.String("booking_id", p.BookingID.String()),
				slog.String("offer_id", p.OfferID.String()),
				slog.String("agency", p.AgencyName),
				slog.Int64("total_price_minor", p.TotalPriceMinor),
				slog.String("currency", p.Currency))
		}
	case event.NameBookingStatusChanged:
		if p, err := event.PayloadAs[event.BookingStatusChanged](e); err == nil {
			attrs = append(attrs,
				slog.String("booking_id", p.BookingID.String()),
				slog.String("from", p.From),
				slog.String("to", p.To),
				slog.String("actor_id", p.ActorID.String()),
				slog.String("reason", p.Reason))
		}
	}

	h.logger.InfoContext(ctx, "domain event", attrs...)
	return nil
}
