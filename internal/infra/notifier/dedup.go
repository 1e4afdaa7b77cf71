package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"travel-broker/internal/domain/notification"
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/usecase/shared"
)

// Claimer records that a message was handed to the transport. Claim reports false
// when the key was already claimed and has not expired.
type Claimer interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// DedupSender suppresses repeats of the same booking message to the same inbox across batches.
// The acceptance response and the booking.created handler both produce the agency messages;
// only the first to arrive is delivered.
type DedupSender struct {
	next    shared.NotificationSender
	claimer Claimer
	logger  *slog.Logger
}

func NewDedupSender(next shared.NotificationSender, claimer Claimer, logger *slog.Logger) *DedupSender {
	return &DedupSender{next: next, claimer: claimer, logger: logger}
}

func (s *DedupSender) SendAll(ctx context.Context, reqs []notification.Request) ([]notification.DeliveryResult, error) {
	results := make([]notification.DeliveryResult, len(reqs))
	var (
		toSend  []notification.Request
		indexes []int
		keys    []string
	)

	for i, r := range reqs {
		results[i].Request = r
		key, ok := claimKey(r)
		if !ok {
			toSend = append(toSend, r)
			indexes = append(indexes, i)
			keys = append(keys, "")
			continue
		}
		claimed, err := s.claimer.Claim(ctx, key)
		if err != nil {
			// fail open
			s.logger.WarnContext(ctx, "notification dedup unavailable",
				slog.String("key", key),
				slog.String("error", err.Error()))
			claimed = true
			key = ""
		}
		if !claimed {
			results[i].Deduplicated = true
			continue
		}
		toSend = append(toSend, r)
		indexes = append(indexes, i)
		keys = append(keys, key)
	}

	if len(toSend) == 0 {
		return results, nil
	}

	sent, err := s.next.SendAll(ctx, toSend)
	for j, idx := range indexes {
		if j < len(sent) {
			results[idx] = sent[j]
		} else if err != nil {
			results[idx].Err = err
		}
		if !results[idx].Delivered && keys[j] != "" {
			if rerr := s.claimer.Release(context.WithoutCancel(ctx), keys[j]); rerr != nil {
				s.logger.WarnContext(ctx, "failed to release notification claim",
					slog.String("key", keys[j]),
					slog.String("error", rerr.Error()))
			}
		}
	}
	return results, err
}

// claimKey scopes a request by booking, template and inbox. Requests without a booking id are never deduplicated.
func claimKey(r notification.Request) (string, bool) {
	bookingID, ok := r.Variables["booking_id"].(string)
	if !ok || bookingID == "" {
		return "", false
	}
	return fmt.Sprintf("notify:%s:%s:%s", bookingID, r.TemplateKey, r.DedupKey()), true
}

// MemoryClaimer is the single-process Claimer used when Redis is not configured.
type MemoryClaimer struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	expires map[string]time.Time
}

func NewMemoryClaimer(ttl time.Duration, clk clock.Clock) *MemoryClaimer {
	return &MemoryClaimer{ttl: ttl, clock: clk, expires: make(map[string]time.Time)}
}

func (c *MemoryClaimer) Claim(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for k, exp := range c.expires {
		if !now.Before(exp) {
			delete(c.expires, k)
		}
	}
	if _, taken := c.expires[key]; taken {
		return false, nil
	}
	c.expires[key] = now.Add(c.ttl)
	return true, nil
}

func (c *MemoryClaimer) Release(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.expires, key)
	c.mu.Unlock()
	return nil
}
