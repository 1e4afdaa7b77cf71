package notification

import (
	"strings"

	"travel-broker/internal/pkg/money"

	"github.com/google/uuid"
)

const DestinationFallback = "Not specified"

// BookingVariables is the variable set shared by every booking template.
func BookingVariables(bookingID uuid.UUID, agencyName string, destination *string, priceMinor int64, currency string) Variables {
	return Variables{
		"booking_id":  bookingID.String(),
		"short_id":    bookingID.String()[:8],
		"agency_name": agencyName,
		"destination": DestinationOrFallback(destination),
		"price":       money.FormatAmount(priceMinor),
		"currency":    strings.ToUpper(currency),
	}
}

func DestinationOrFallback(destination *string) string {
	if destination == nil || strings.TrimSpace(*destination) == "" {
		return DestinationFallback
	}
	return strings.TrimSpace(*destination)
}

// Clone returns a copy so that requests built from one variable set do not share a map.
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
