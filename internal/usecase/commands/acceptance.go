package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
	"travel-broker/internal/domain/offer"
	"travel-broker/internal/infra"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/pkg/errs"
	"travel-broker/internal/pkg/money"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptanceOutcome string

const (
	OutcomeAccepted         AcceptanceOutcome = "accepted"
	OutcomeReadyToConfirm   AcceptanceOutcome = "ready_to_confirm"
	OutcomeOfferNotFound    AcceptanceOutcome = "offer_not_found"
	OutcomeNotAuthorized    AcceptanceOutcome = "not_authorized"
	OutcomeAlreadyBooked    AcceptanceOutcome = "already_booked"
	OutcomeAlreadyAccepted  AcceptanceOutcome = "already_accepted"
	OutcomeOfferUnavailable AcceptanceOutcome = "offer_unavailable"
)

var outcomeMessages = map[AcceptanceOutcome]string{
	OutcomeOfferNotFound:    "❌ Offer not found.",
	OutcomeNotAuthorized:    "⛔ You can only accept offers on your own travel requests.",
	OutcomeAlreadyBooked:    "ℹ️ This travel request is already booked.",
	OutcomeAlreadyAccepted:  "ℹ️ This offer has already been accepted.",
	OutcomeOfferUnavailable: "⚠️ This offer is no longer available.",
}

const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

type AcceptanceConfig struct {
	// BroadcastAddress receives a copy of every new booking. Empty disables it.
	BroadcastAddress string
}

type AcceptanceResult struct {
	Outcome             AcceptanceOutcome
	Message             string
	TravelRequestID     *uuid.UUID
	BookingID           *uuid.UUID
	NeedsReconciliation bool

	// Notifications has one entry per inbox, with the agency prompt's actions merged in.
	Notifications []notification.Request
	// Outbound is what the caller sends. The agency prompt stays a separate request under its
	// own template key, so a creation notice already claimed by an event handler cannot swallow it.
	Outbound      []notification.Request
}

type ConfirmationPrompt struct {
	Outcome         AcceptanceOutcome
	Message         string
	Choices         []notification.Action
	TravelRequestID *uuid.UUID
}

type AcceptanceCommands interface {
	ShowConfirmation(ctx context.Context, offerID, actingUserID uuid.UUID) (*ConfirmationPrompt, error)
	ConfirmAcceptance(ctx context.Context, offerID, actingUserID uuid.UUID) (*AcceptanceResult, error)
}

type acceptanceUseCaseImpl struct {
	uow       shared.UnitOfWork
	statuses  BookingStatusCommands
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
	cfg       AcceptanceConfig
}

func NewAcceptanceUseCase(
	uow shared.UnitOfWork,
	statuses BookingStatusCommands,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
	cfg AcceptanceConfig,
) AcceptanceCommands {
	return &acceptanceUseCaseImpl{
		uow:       uow,
		statuses:  statuses,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		cfg:       cfg,
	}
}

func (uc *acceptanceUseCaseImpl) ShowConfirmation(ctx context.Context, offerID, actingUserID uuid.UUID) (*ConfirmationPrompt, error) {
	oc, outcome, err := uc.precheck(ctx, offerID, actingUserID)
	if err != nil {
		return nil, err
	}
	if outcome != "" {
		return &ConfirmationPrompt{
			Outcome:         outcome,
			Message:         outcomeMessages[outcome],
			TravelRequestID: travelRequestIDOf(oc),
		}, nil
	}

	id := offerID.String()
	return &ConfirmationPrompt{
		Outcome: OutcomeReadyToConfirm,
		Message: fmt.Sprintf("Accept the offer from %s for %s?\n\nDestination: %s\n\nOther offers on this request will be withdrawn.",
			oc.AgencyName,
			money.Format(oc.Offer.TotalPriceMinor, oc.Offer.Currency),
			notification.DestinationOrFallback(destinationOf(oc))),
		Choices: []notification.Action{
			{Label: "✅ Confirm", Payload: "offer:" + id + ":" + ActionConfirm},
			{Label: "↩️ Cancel", Payload: "offer:" + id + ":" + ActionCancel},
		},
		TravelRequestID: travelRequestIDOf(oc),
	}, nil
}

func (uc *acceptanceUseCaseImpl) ConfirmAcceptance(ctx context.Context, offerID, actingUserID uuid.UUID) (*AcceptanceResult, error) {
	oc, outcome, err := uc.precheck(ctx, offerID, actingUserID)
	if err != nil {
		return nil, err
	}
	if outcome != "" {
		return rejected(outcome, oc), nil
	}

	now := uc.clock.Now()
	b, err := booking.NewBooking(booking.Snapshot{
		TravelRequestID: oc.TravelRequest.ID,
		OfferID:         oc.Offer.ID,
		UserID:          oc.TravelRequest.UserID,
		AgencyID:        oc.Offer.AgencyID,
		AgencyName:      oc.AgencyName,
		TotalPriceMinor: oc.Offer.TotalPriceMinor,
		Currency:        oc.Offer.Currency,
		Destination:     destinationOf(oc),
	}, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	var withdrawn int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr := tx.Offers().MarkAccepted(ctx, tx.DB(), oc.Offer.ID); derr != nil {
			return derr
		}
		if derr := tx.TravelRequests().MarkBooked(ctx, tx.DB(), oc.TravelRequest.ID); derr != nil {
			return derr
		}
		n, derr := tx.Offers().WithdrawCompeting(ctx, tx.DB(), oc.TravelRequest.ID, oc.Offer.ID)
		if derr != nil {
			return derr
		}
		withdrawn = n
		return nil
	})
	if err != nil {
		if shared.IsConflict(err) {
			uc.logger.WarnContext(ctx, "offer acceptance lost a concurrent race",
				slog.String("offer_id", offerID.String()),
				slog.String("user_id", actingUserID.String()),
				slog.String("error", err.Error()))
			return rejected(OutcomeAlreadyAccepted, oc), nil
		}
		uc.logger.ErrorContext(ctx, "offer acceptance failed",
			slog.String("offer_id", offerID.String()),
			slog.String("user_id", actingUserID.String()),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 10)))
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", b.ID().String()),
		slog.String("offer_id", offerID.String()),
		slog.String("travel_request_id", oc.TravelRequest.ID.String()),
		slog.Int64("withdrawn_offers", withdrawn))

	// From here on the booking exists; nothing below may turn the result into a failure.
	uc.publishCreated(ctx, b)

	result := &AcceptanceResult{
		Outcome:         OutcomeAccepted,
		Message:         travelerAcceptedText(b),
		TravelRequestID: travelRequestIDOf(oc),
	}
	bookingID := b.ID()
	result.BookingID = &bookingID

	notifications := uc.acceptanceNotifications(oc, b)

	transitionNotes, err := uc.statuses.Transition(ctx, b.ID(), booking.StatusAwaitingAgencyConfirmation, TransitionContext{
		ActorID: actingUserID,
		Reason:  "offer accepted",
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "CRITICAL: booking created but initial status transition failed",
			slog.String("booking_id", b.ID().String()),
			slog.String("target", booking.StatusAwaitingAgencyConfirmation.String()),
			slog.String("error", err.Error()))
		result.NeedsReconciliation = true
	}

	result.Notifications = notification.Dedupe(append(slices.Clone(notifications), transitionNotes...))
	result.Outbound = append(notification.Dedupe(notifications), notification.Dedupe(transitionNotes)...)
	return result, nil
}

// precheck returns a non-empty outcome when the offer cannot be accepted.
// The offer context is returned whenever it was found.
func (uc *acceptanceUseCaseImpl) precheck(ctx context.Context, offerID, actingUserID uuid.UUID) (*shared.OfferContext, AcceptanceOutcome, error) {
	oc, err := uc.uow.CommandReads().OfferContextByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, OutcomeOfferNotFound, nil
		}
		return nil, "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	switch {
	case !oc.TravelRequest.IsOwnedBy(actingUserID):
		return oc, OutcomeNotAuthorized, nil
	case oc.TravelRequest.Status.IsBooked():
		return oc, OutcomeAlreadyBooked, nil
	case oc.Offer.Status == offer.StatusAccepted:
		return oc, OutcomeAlreadyAccepted, nil
	case !oc.Offer.Status.IsOpen():
		return oc, OutcomeOfferUnavailable, nil
	}
	return oc, "", nil
}

func (uc *acceptanceUseCaseImpl) publishCreated(ctx context.Context, b *booking.Booking) {
	created := event.New(event.NameBookingCreated, event.BookingCreated{
		BookingID:       b.ID(),
		OfferID:         b.OfferID(),
		UserID:          b.UserID(),
		AgencyID:        b.AgencyID(),
		TravelRequestID: b.TravelRequestID(),
		TotalPriceMinor: b.TotalPriceMinor(),
		Currency:        b.Currency(),
		Destination:     b.Destination(),
		AgencyName:      b.AgencyName(),
	}, b.CreatedAt())

	if err := uc.publisher.Publish(context.WithoutCancel(ctx), created); err != nil {
		uc.logger.ErrorContext(ctx, "failed to publish booking created",
			slog.String("booking_id", b.ID().String()),
			slog.String("error", err.Error()))
	}
}

func (uc *acceptanceUseCaseImpl) acceptanceNotifications(oc *shared.OfferContext, b *booking.Booking) []notification.Request {
	vars := notification.BookingVariables(b.ID(), b.AgencyName(), b.Destination(), b.TotalPriceMinor(), b.Currency())
	key := func(role notification.Role) notification.TemplateKey {
		return notification.KeyFor(event.NameBookingCreated, role)
	}
	agencyText := agencyAcceptedText(b)

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
			Text:        agencyText,
		})
	}
	reqs = append(reqs, notification.Request{
		Address:     oc.AgencyGroupAddress,
		Channel:     notification.ChannelChat,
		Role:        notification.RoleAgencyGroup,
		TemplateKey: key(notification.RoleAgencyGroup),
		Variables:   vars.Clone(),
		Text:        agencyText,
	})
	if uc.cfg.BroadcastAddress != "" {
		reqs = append(reqs, notification.Request{
			Address:     uc.cfg.BroadcastAddress,
			Channel:     notification.ChannelChat,
			Role:        notification.RoleManager,
			TemplateKey: key(notification.RoleManager),
			Variables:   vars.Clone(),
			Text:        managerNewBookingText(b),
		})
	}
	return reqs
}

func rejected(outcome AcceptanceOutcome, oc *shared.OfferContext) *AcceptanceResult {
	return &AcceptanceResult{
		Outcome:         outcome,
		Message:         outcomeMessages[outcome],
		TravelRequestID: travelRequestIDOf(oc),
	}
}

func travelRequestIDOf(oc *shared.OfferContext) *uuid.UUID {
	if oc == nil {
		return nil
	}
	id := oc.TravelRequest.ID
	return &id
}

// The offer's own destination wins over the one on the travel request.
func destinationOf(oc *shared.OfferContext) *string {
	if oc.Offer.Destination != nil {
		return oc.Offer.Destination
	}
	return oc.TravelRequest.Destination
}

func travelerAcceptedText(b *booking.Booking) string {
	return fmt.Sprintf("🎉 Booking confirmed!\n\nYou accepted the offer from %s for %s.\nDestination: %s\nBooking ID: #%s\n\nThe agency will contact you shortly.",
		b.AgencyName(),
		money.Format(b.TotalPriceMinor(), b.Currency()),
		notification.DestinationOrFallback(b.Destination()),
		b.ShortID())
}

func agencyAcceptedText(b *booking.Booking) string {
	return fmt.Sprintf("✅ Offer Accepted!\n\nBooking #%s\nDestination: %s\nPrice: %s\n\nPlease confirm the booking with the traveler.",
		b.ShortID(),
		notification.DestinationOrFallback(b.Destination()),
		money.Format(b.TotalPriceMinor(), b.Currency()))
}

func managerNewBookingText(b *booking.Booking) string {
	return fmt.Sprintf("🆕 New Booking #%s\n\nAgency: %s\nDestination: %s\nPrice: %s",
		b.ShortID(),
		b.AgencyName(),
		notification.DestinationOrFallback(b.Destination()),
		money.Format(b.TotalPriceMinor(), b.Currency()))
}
