package response

import (
	"travel-broker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ConfirmationResponse struct {
	Outcome         string           `json:"outcome"`
	Message         string           `json:"message"`
	Choices         []ActionResponse `json:"choices,omitempty"`
	TravelRequestID *uuid.UUID       `json:"travel_request_id,omitempty"`
}

func FromConfirmationPrompt(p *commands.ConfirmationPrompt) (*ConfirmationResponse, error) {
	var res ConfirmationResponse
	if err := copier.Copy(&res, p); err != nil {
		return nil, err
	}
	return &res, nil
}

type AcceptanceResponse struct {
	Outcome             string                 `json:"outcome"`
	Message             string                 `json:"message"`
	TravelRequestID     *uuid.UUID             `json:"travel_request_id,omitempty"`
	BookingID           *uuid.UUID             `json:"booking_id,omitempty"`
	NeedsReconciliation bool                   `json:"needs_reconciliation,omitempty"`
	Notifications       []NotificationResponse `json:"notifications"`
}

func FromAcceptanceResult(r *commands.AcceptanceResult, deliveries []NotificationResponse) *AcceptanceResponse {
	if deliveries == nil {
		deliveries = []NotificationResponse{}
	}
	return &AcceptanceResponse{
		Outcome:             string(r.Outcome),
		Message:             r.Message,
		TravelRequestID:     r.TravelRequestID,
		BookingID:           r.BookingID,
		NeedsReconciliation: r.NeedsReconciliation,
		Notifications:       deliveries,
	}
}

type ReconcileResponse struct {
	Scanned  int         `json:"scanned"`
	Advanced []uuid.UUID `json:"advanced"`
	Failed   []uuid.UUID `json:"failed"`
}

func FromReconcileReport(r *commands.ReconcileReport) (*ReconcileResponse, error) {
	res := ReconcileResponse{Advanced: []uuid.UUID{}, Failed: []uuid.UUID{}}
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	if res.Advanced == nil {
		res.Advanced = []uuid.UUID{}
	}
	if res.Failed == nil {
		res.Failed = []uuid.UUID{}
	}
	return &res, nil
}

type ProxyChatResponse struct {
	Text string `json:"text"`
}
