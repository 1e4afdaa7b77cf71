//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a traveler or agent. An empty chatAddress stores NULL.
func CreateTestUser(t *testing.T, db DBLike, displayName, chatAddress string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, display_name, chat_address) VALUES ($1, $2, NULLIF($3, ''))",
		userID, displayName, chatAddress)
	require.NoError(t, err)

	return userID
}

func CreateTestAgency(t *testing.T, db DBLike, name, groupChatAddress string) uuid.UUID {
	t.Helper()

	agencyID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO agencies (id, name, group_chat_address) VALUES ($1, $2, NULLIF($3, ''))",
		agencyID, name, groupChatAddress)
	require.NoError(t, err)

	return agencyID
}

func CreateTestTravelRequest(t *testing.T, db DBLike, userID uuid.UUID, destination string) uuid.UUID {
	t.Helper()

	requestID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO travel_requests (id, user_id, destination, status) VALUES ($1, $2, NULLIF($3, ''), 'OFFERS_RECEIVED')",
		requestID, userID, destination)
	require.NoError(t, err)

	return requestID
}

type OfferParams struct {
	TravelRequestID uuid.UUID
	AgencyID        uuid.UUID
	AgentID         *uuid.UUID
	TotalPriceMinor int64
	Currency        string
	Destination     string
	Status          string
}

func CreateTestOffer(t *testing.T, db DBLike, p OfferParams) uuid.UUID {
	t.Helper()

	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Status == "" {
		p.Status = "SUBMITTED"
	}

	offerID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (id, travel_request_id, agency_id, assigned_agent_id, total_price_minor, currency, destination, status)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`,
		offerID, p.TravelRequestID, p.AgencyID, p.AgentID, p.TotalPriceMinor, p.Currency, p.Destination, p.Status)
	require.NoError(t, err)

	return offerID
}

// BackdateBooking moves created_at into the past so the reconciler treats the booking as stale.
func BackdateBooking(t *testing.T, db DBLike, bookingID uuid.UUID, age time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET created_at = now() - make_interval(secs => $2), updated_at = now() - make_interval(secs => $2) WHERE id = $1",
		bookingID, age.Seconds())
	require.NoError(t, err)
}

func SetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE bookings SET status = $2 WHERE id = $1", bookingID, status)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func QueryString(t *testing.T, db DBLike, query string, args ...any) string {
	t.Helper()

	var s string
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&s))
	return s
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
