package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/domain/notification"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/pkg/errs"
	"travel-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileConfig struct {
	StaleAfter time.Duration
	BatchSize  int32
}

type ReconcileReport struct {
	Scanned  int         `json:"scanned"`
	Advanced []uuid.UUID `json:"advanced"`
	Failed   []uuid.UUID `json:"failed"`
}

type ReconcileCommands interface {
	// ReconcileStuckBookings retries the first transition for bookings left in CREATED.
	ReconcileStuckBookings(ctx context.Context) (*ReconcileReport, error)
}

type reconcileUseCaseImpl struct {
	uow      shared.UnitOfWork
	statuses BookingStatusCommands
	sender   shared.NotificationSender
	clock    clock.Clock
	logger   *slog.Logger
	cfg      ReconcileConfig
}

func NewReconcileUseCase(
	uow shared.UnitOfWork,
	statuses BookingStatusCommands,
	sender shared.NotificationSender,
	clk clock.Clock,
	logger *slog.Logger,
	cfg ReconcileConfig,
) ReconcileCommands {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &reconcileUseCaseImpl{
		uow:      uow,
		statuses: statuses,
		sender:   sender,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
	}
}

func (uc *reconcileUseCaseImpl) ReconcileStuckBookings(ctx context.Context) (*ReconcileReport, error) {
	cutoff := uc.clock.Now().Add(-uc.cfg.StaleAfter)

	stuck, err := uc.uow.CommandReads().StaleBookings(ctx, booking.StatusCreated, cutoff, uc.cfg.BatchSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	report := &ReconcileReport{Scanned: len(stuck)}
	for _, b := range stuck {
		notes, err := uc.statuses.Transition(ctx, b.ID(), booking.StatusAwaitingAgencyConfirmation, TransitionContext{
			ActorID: uuid.Nil,
			Reason:  "reconciliation",
		})
		if err != nil {
			if errs.Is(err, ErrStatusConflict) || errs.Is(err, ErrInvalidTransition) {
				// someone else advanced it meanwhile
				continue
			}
			uc.logger.ErrorContext(ctx, "reconciliation transition failed",
				slog.String("booking_id", b.ID().String()),
				slog.String("error", err.Error()))
			report.Failed = append(report.Failed, b.ID())
			continue
		}
		report.Advanced = append(report.Advanced, b.ID())
		uc.send(ctx, b.ID(), notes)
	}

	if report.Scanned > 0 {
		uc.logger.InfoContext(ctx, "reconciliation pass finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("advanced", len(report.Advanced)),
			slog.Int("failed", len(report.Failed)))
	}
	return report, nil
}

// Notifications are sent per booking; dedupe across bookings would drop messages for the same agent.
func (uc *reconcileUseCaseImpl) send(ctx context.Context, bookingID uuid.UUID, notes []notification.Request) {
	if len(notes) == 0 {
		return
	}
	if _, err := uc.sender.SendAll(ctx, notes); err != nil {
		uc.logger.WarnContext(ctx, "reconciliation notifications not sent",
			slog.String("booking_id", bookingID.String()),
			slog.String("error", err.Error()))
	}
}
