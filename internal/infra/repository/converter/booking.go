package converter

import (
	"travel-broker/internal/domain/booking"
	sqlc "travel-broker/internal/infra/sqlc/generated"
	"travel-broker/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		TravelRequestID: b.TravelRequestID(),
		OfferID:         b.OfferID(),
		UserID:          b.UserID(),
		AgencyID:        b.AgencyID(),
		AgencyName:      b.AgencyName(),
		Status:          b.Status().String(),
		TotalPriceMinor: b.TotalPriceMinor(),
		Currency:        b.Currency(),
		Destination:     pgconv.StringPtrToPgtype(b.Destination()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	snap := booking.Snapshot{
		TravelRequestID: row.TravelRequestID,
		OfferID:         row.OfferID,
		UserID:          row.UserID,
		AgencyID:        row.AgencyID,
		AgencyName:      row.AgencyName,
		TotalPriceMinor: row.TotalPriceMinor,
		Currency:        row.Currency,
		Destination:     pgconv.StringPtrFromPgtype(row.Destination),
	}

	return booking.Reconstruct(
		row.ID,
		snap,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
