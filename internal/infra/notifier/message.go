// Package notifier delivers notification requests to the outbound chat transport.
package notifier

import (
	"travel-broker/internal/domain/notification"

	"github.com/google/uuid"
)

// OutboundMessage is the wire envelope consumed by the chat delivery service.
type OutboundMessage struct {
	ID          uuid.UUID              `json:"id"`
	RecipientID *uuid.UUID             `json:"recipient_id,omitempty"`
	Channel     string                 `json:"channel"`
	Address     string                 `json:"address"`
	Role        string                 `json:"role"`
	TemplateKey string                 `json:"template_key"`
	Variables   notification.Variables `json:"variables"`
	Text        string                 `json:"text,omitempty"`
	Actions     []notification.Action  `json:"actions,omitempty"`
}

func newOutboundMessage(r notification.Request) OutboundMessage {
	return OutboundMessage{
		ID:          uuid.New(),
		RecipientID: r.RecipientID,
		Channel:     string(r.Channel),
		Address:     r.Address,
		Role:        string(r.Role),
		TemplateKey: string(r.TemplateKey),
		Variables:   r.Variables,
		Text:        r.Text,
		Actions:     r.Actions,
	}
}
