package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
	"travel-broker/internal/infra"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/pkg/errs"
	"travel-broker/internal/pkg/money"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidTransition = errs.New("invalid booking status transition")
	ErrStatusConflict    = errs.New("booking status changed concurrently")
)

// TransitionContext records who asked for a status change and why.
type TransitionContext struct {
	ActorID uuid.UUID
	Reason  string
}

type BookingStatusCommands interface {
	// Transition moves a booking to target and returns the notifications the change calls for.
	// The notifications are not sent.
	Transition(ctx context.Context, bookingID uuid.UUID, target booking.Status, tc TransitionContext) ([]notification.Request, error)
}

type bookingStatusUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingStatusUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) BookingStatusCommands {
	return &bookingStatusUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *bookingStatusUseCaseImpl) Transition(
	ctx context.Context,
	bookingID uuid.UUID,
	target booking.Status,
	tc TransitionContext,
) ([]notification.Request, error) {
	b, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	from := b.Status()
	now := uc.clock.Now()
	if err := b.TransitionTo(target, now); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "transition rejected"), ErrInvalidTransition)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, from, target, now)
	})
	if err != nil {
		if shared.IsConflict(err) {
			uc.logger.WarnContext(ctx, "booking status changed concurrently",
				slog.String("booking_id", bookingID.String()),
				slog.String("from", from.String()),
				slog.String("to", target.String()))
			return nil, errs.Mark(err, ErrStatusConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.logger.InfoContext(ctx, "booking status changed",
		slog.String("booking_id", bookingID.String()),
		slog.String("from", from.String()),
		slog.String("to", target.String()),
		slog.String("actor_id", tc.ActorID.String()))

	changed := event.New(event.NameBookingStatusChanged, event.BookingStatusChanged{
		BookingID: bookingID,
		From:      from.String(),
		To:        target.String(),
		ActorID:   tc.ActorID,
		Reason:    tc.Reason,
	}, now)
	if err := uc.publisher.Publish(context.WithoutCancel(ctx), changed); err != nil {
		uc.logger.ErrorContext(ctx, "failed to publish status change",
			slog.String("booking_id", bookingID.String()),
			slog.String("error", err.Error()))
	}

	return notification.Dedupe(uc.buildNotifications(ctx, b)), nil
}

// Contact lookups here are best-effort; a missing address drops that recipient only.
func (uc *bookingStatusUseCaseImpl) buildNotifications(ctx context.Context, b *booking.Booking) []notification.Request {
	vars := notification.BookingVariables(b.ID(), b.AgencyName(), b.Destination(), b.TotalPriceMinor(), b.Currency())
	vars["status"] = b.Status().String()
	key := func(role notification.Role) notification.TemplateKey {
		return notification.KeyFor("booking.status."+strings.ToLower(b.Status().String()), role)
	}

	switch b.Status() {
	case booking.StatusAwaitingAgencyConfirmation:
		return uc.agencyConfirmationRequests(ctx, b, vars, key)
	case booking.StatusAgencyConfirmed,
		booking.StatusRejectedByAgency,
		booking.StatusCancelled,
		booking.StatusExpired,
		booking.StatusCompleted:
		traveler, err := uc.uow.CommandReads().UserContact(ctx, b.UserID())
		if err != nil {
			uc.logger.WarnContext(ctx, "traveler contact unavailable",
				slog.String("booking_id", b.ID().String()),
				slog.String("error", err.Error()))
			return nil
		}
		userID := traveler.UserID
		return []notification.Request{{
			RecipientID: &userID,
			Address:     traveler.ChatAddress,
			Channel:     notification.ChannelChat,
			Role:        notification.RoleTraveler,
			TemplateKey: key(notification.RoleTraveler),
			Variables:   vars,
			Text:        travelerStatusText(b),
		}}
	default:
		return nil
	}
}

func (uc *bookingStatusUseCaseImpl) agencyConfirmationRequests(
	ctx context.Context,
	b *booking.Booking,
	vars notification.Variables,
	key func(notification.Role) notification.TemplateKey,
) []notification.Request {
	oc, err := uc.uow.CommandReads().OfferContextByID(ctx, b.OfferID())
	if err != nil {
		uc.logger.WarnContext(ctx, "offer context unavailable",
			slog.String("booking_id", b.ID().String()),
			slog.String("error", err.Error()))
		return nil
	}

	text := fmt.Sprintf("📋 Booking #%s awaits your confirmation\n\nDestination: %s\nPrice: %s",
		b.ShortID(),
		notification.DestinationOrFallback(b.Destination()),
		money.Format(b.TotalPriceMinor(), b.Currency()))
	actions := []notification.Action{
		{Label: "✅ Confirm", Payload: "booking:" + b.ID().String() + ":confirm"},
		{Label: "❌ Reject", Payload: "booking:" + b.ID().String() + ":reject"},
	}

	var reqs []notification.Request
	if oc.Agent != nil {
		agentID := oc.Agent.UserID
		reqs = append(reqs, notification.Request{
			RecipientID: &agentID,
			Address:     oc.Agent.ChatAddress,
			Channel:     notification.ChannelChat,
			Role:        notification.RoleAgent,
			TemplateKey: key(notification.RoleAgent),
			Variables:   vars.Clone(),
			Text:        text,
			Actions:     actions,
		})
	}
	reqs = append(reqs, notification.Request{
		Address:     oc.AgencyGroupAddress,
		Channel:     notification.ChannelChat,
		Role:        notification.RoleAgencyGroup,
		TemplateKey: key(notification.RoleAgencyGroup),
		Variables:   vars.Clone(),
		Text:        text,
		Actions:     actions,
	})
	return reqs
}

func travelerStatusText(b *booking.Booking) string {
	short := b.ShortID()
	switch b.Status() {
	case booking.StatusAgencyConfirmed:
		return fmt.Sprintf("✅ %s confirmed your booking #%s.", b.AgencyName(), short)
	case booking.StatusRejectedByAgency:
		return fmt.Sprintf("😔 %s could not confirm booking #%s. Our team will help you find another option.", b.AgencyName(), short)
	case booking.StatusCancelled:
		return fmt.Sprintf("🚫 Booking #%s has been cancelled.", short)
	case booking.StatusExpired:
		return fmt.Sprintf("⌛ Booking #%s expired before the agency confirmed it.", short)
	case booking.StatusCompleted:
		return fmt.Sprintf("🏁 Booking #%s is complete. Thank you for travelling with %s!", short, b.AgencyName())
	default:
		return fmt.Sprintf("Booking #%s is now %s.", short, b.Status())
	}
}
