package response

import (
	"travel-broker/internal/domain/notification"

	"github.com/google/uuid"
)

type ActionResponse struct {
	Label   string `json:"label"`
	Payload string `json:"payload"`
}

type NotificationResponse struct {
	RecipientID  *uuid.UUID       `json:"recipient_id,omitempty"`
	Address      string           `json:"address"`
	Channel      string           `json:"channel"`
	Role         string           `json:"role"`
	TemplateKey  string           `json:"template_key"`
	Text         string           `json:"text,omitempty"`
	Actions      []ActionResponse `json:"actions,omitempty"`
	Delivered    bool             `json:"delivered"`
	Deduplicated bool             `json:"deduplicated,omitempty"`
	Error        string           `json:"error,omitempty"`
}

func FromDeliveryResults(results []notification.DeliveryResult) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(results))
	for _, r := range results {
		n := NotificationResponse{
			RecipientID:  r.Request.RecipientID,
			Address:      r.Request.Address,
			Channel:      string(r.Request.Channel),
			Role:         string(r.Request.Role),
			TemplateKey:  string(r.Request.TemplateKey),
			Text:         r.Request.Text,
			Actions:      fromActions(r.Request.Actions),
			Delivered:    r.Delivered,
			Deduplicated: r.Deduplicated,
		}
		if r.Err != nil {
			n.Error = r.Err.Error()
		}
		out = append(out, n)
	}
	return out
}

func fromActions(actions []notification.Action) []ActionResponse {
	if len(actions) == 0 {
		return nil
	}
	out := make([]ActionResponse, len(actions))
	for i, a := range actions {
		out[i] = ActionResponse{Label: a.Label, Payload: a.Payload}
	}
	return out
}
