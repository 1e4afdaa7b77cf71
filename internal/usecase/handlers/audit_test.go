//go:build unit

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"travel-broker/internal/domain/event"
	"travel-broker/internal/usecase/handlers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogHandler(t *testing.T) {
	bookingID := uuid.New()
	actor := uuid.New()

	tests := []struct {
		name  string
		event event.Event
		want  map[string]any
	}{
		{
			name: "booking created",
			event: event.New(event.NameBookingCreated, event.BookingCreated{
				BookingID:       bookingID,
				AgencyName:      "TravelCo",
				TotalPriceMinor: 150000,
				Currency:        "USD",
			}, occurredAt),
			want: map[string]any{
				"event":      event.NameBookingCreated,
				"booking_id": bookingID.String(),
				"agency":     "TravelCo",
				"currency":   "USD",
			},
		},
		{
			name: "status changed",
			event: event.New(event.NameBookingStatusChanged, &event.BookingStatusChanged{
				BookingID: bookingID,
				From:      "CREATED",
				To:        "AWAITING_AGENCY_CONFIRMATION",
				ActorID:   actor,
			}, occurredAt),
			want: map[string]any{
				"event":      event.NameBookingStatusChanged,
				"booking_id": bookingID.String(),
				"from":       "CREATED",
				"to":         "AWAITING_AGENCY_CONFIRMATION",
				"actor_id":   actor.String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			h := handlers.NewAuditLogHandler(tt.event.Name(), logger)

			require.NoError(t, h.Handle(context.Background(), tt.event))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, "domain event", line["msg"])
			assert.Equal(t, tt.event.ID().String(), line["event_id"])
			for k, v := range tt.want {
				assert.Equal(t, v, line[k], k)
			}
		})
	}
}

func TestNewAuditLogHandlers(t *testing.T) {
	hs := handlers.NewAuditLogHandlers(slog.Default())

	require.Len(t, hs, 2)
	assert.Equal(t, event.NameBookingCreated, hs[0].EventName())
	assert.Equal(t, event.NameBookingStatusChanged, hs[1].EventName())
	assert.NotEqual(t, hs[0].Name(), hs[1].Name())
}
