package request

import (
	"strings"

	"travel-broker/internal/domain/booking"
	"travel-broker/internal/pkg/errs"
)

var ErrUnknownStatus = errs.New("unknown booking status")

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r TransitionBookingRequest) TargetStatus() (booking.Status, error) {
	st := booking.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
	if !st.IsValid() {
		return "", errs.Wrapf(ErrUnknownStatus, "%q", r.Status)
	}
	return st, nil
}
