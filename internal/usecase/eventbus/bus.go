// Package eventbus dispatches domain events to in-process handlers.
//
// Handlers for one event run concurrently. A failing or panicking handler is logged and
// never affects its siblings or the publisher.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sort"
	"sync"

	"travel-broker/internal/domain/event"

	"golang.org/x/sync/errgroup"
)

type Handler interface {
	EventName() string
	Name() string
	Handle(ctx context.Context, e event.Event) error
}

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Register(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[h.EventName()] = append(b.handlers[h.EventName()], h)
	b.logger.Debug("event handler registered",
		slog.String("event", h.EventName()),
		slog.String("handler", h.Name()))
}

// Publish runs every handler registered for e and waits for all of them to settle.
// It always returns nil; handler failures are logged.
func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	b.mu.RLock()
	hs := slices.Clone(b.handlers[e.Name()])
	b.mu.RUnlock()

	if len(hs) == 0 {
		b.logger.DebugContext(ctx, "no handlers for event",
			slog.String("event", e.Name()),
			slog.String("event_id", e.ID().String()))
		return nil
	}

	var g errgroup.Group
	for _, h := range hs {
		g.Go(func() error {
			b.dispatch(ctx, h, e)
			return nil
		})
	}
	_ = g.Wait()

	return nil
}

// PublishAll publishes events one after another in slice order.
func (b *Bus) PublishAll(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		if err := b.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) RegisteredEvents() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name, hs := range b.handlers {
		if len(hs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (b *Bus) dispatch(ctx context.Context, h Handler, e event.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event handler panicked",
				slog.String("event", e.Name()),
				slog.String("event_id", e.ID().String()),
				slog.String("handler", h.Name()),
				slog.String("panic", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	if err := h.Handle(ctx, e); err != nil {
		b.logger.ErrorContext(ctx, "event handler failed",
			slog.String("event", e.Name()),
			slog.String("event_id", e.ID().String()),
			slog.String("handler", h.Name()),
			slog.String("error", err.Error()))
	}
}
