// Package handlers holds event bus handlers reacting to booking lifecycle events.
package handlers

import (
	"context"
	"log/slog"

	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
	"travel-broker/internal/pkg/errs"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingCreatedNotifierName = "booking_created_notifier"

type NotifyConfig struct {
	// BroadcastAddress is the manager chat; empty disables manager notifications.
	BroadcastAddress string
}

// BookingCreatedNotifier turns a booking.created event into one deduplicated batch of notifications.
type BookingCreatedNotifier struct {
	reads  shared.CommandReads
	sender shared.NotificationSender
	cfg    NotifyConfig
	logger *slog.Logger
}

func NewBookingCreatedNotifier(
	uow shared.UnitOfWork,
	sender shared.NotificationSender,
	cfg NotifyConfig,
	logger *slog.Logger,
) *BookingCreatedNotifier {
	return &BookingCreatedNotifier{
		reads:  uow.CommandReads(),
		sender: sender,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *BookingCreatedNotifier) EventName() string { return event.NameBookingCreated }
func (h *BookingCreatedNotifier) Name() string      { return bookingCreatedNotifierName }

func (h *BookingCreatedNotifier) Handle(ctx context.Context, e event.Event) error {
	p, err := event.PayloadAs[event.BookingCreated](e)
	if err != nil {
		return errs.Wrap(err, "decode booking.created payload")
	}

	reqs := h.Build(ctx, p)
	if len(reqs) == 0 {
		h.logger.DebugContext(ctx, "no recipients for booking.created",
			slog.String("booking_id", p.BookingID.String()))
		return nil
	}

	results, err := h.sender.SendAll(ctx, reqs)
	if err != nil {
		return errs.Wrap(err, "send booking.created notifications")
	}

	delivered := 0
	for _, r := range results {
		if r.Delivered {
			delivered++
		}
	}
	h.logger.InfoContext(ctx, "booking.created notifications dispatched",
		slog.String("booking_id", p.BookingID.String()),
		slog.Int("requested", len(reqs)),
		slog.Int("delivered", delivered))
	return nil
}

// Build resolves every recipient of a new booking. Lookup failures drop the affected recipients only.
func (h *BookingCreatedNotifier) Build(ctx context.Context, p event.BookingCreated) []notification.Request {
	vars := notification.BookingVariables(p.BookingID, p.AgencyName, p.Destination, p.TotalPriceMinor, p.Currency)
	key := func(role notification.Role) notification.TemplateKey {
		return notification.KeyFor(event.NameBookingCreated, role)
	}

	var reqs []notification.Request

	oc, err := h.reads.OfferContextByID(ctx, p.OfferID)
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "offer context unavailable, skipping agency recipients",
			slog.String("booking_id", p.BookingID.String()),
			slog.String("offer_id", p.OfferID.String()),
			slog.String("error", err.Error()))
	case oc.Agent == nil || oc.Agent.ChatAddress == "":
		h.logger.WarnContext(ctx, "offer has no reachable agent, skipping agency recipients",
			slog.String("booking_id", p.BookingID.String()),
			slog.String("offer_id", p.OfferID.String()))
	default:
		agentID := oc.Agent.UserID
		reqs = append(reqs, chatRequest(&agentID, oc.Agent.ChatAddress, notification.RoleAgent, key, vars))
		if oc.AgencyGroupAddress != "" && oc.AgencyGroupAddress != oc.Agent.ChatAddress {
			reqs = append(reqs, chatRequest(nil, oc.AgencyGroupAddress, notification.RoleAgencyGroup, key, vars))
		}
	}

	if h.cfg.BroadcastAddress != "" {
		reqs = append(reqs, chatRequest(nil, h.cfg.BroadcastAddress, notification.RoleManager, key, vars))
	}

	traveler, err := h.reads.UserContact(ctx, p.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "traveler contact unavailable",
			slog.String("booking_id", p.BookingID.String()),
			slog.String("user_id", p.UserID.String()),
			slog.String("error", err.Error()))
	} else if traveler.ChatAddress != "" {
		travelerID := traveler.UserID
		reqs = append(reqs, chatRequest(&travelerID, traveler.ChatAddress, notification.RoleTraveler, key, vars))
	}

	return notification.Dedupe(reqs)
}

func chatRequest(
	recipient *uuid.UUID,
	address string,
	role notification.Role,
	key func(notification.Role) notification.TemplateKey,
	vars notification.Variables,
) notification.Request {
	return notification.Request{
		RecipientID: recipient,
		Address:     address,
		Channel:     notification.ChannelChat,
		Role:        role,
		TemplateKey: key(role),
		Variables:   vars.Clone(),
	}
}
