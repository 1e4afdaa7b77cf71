package notification

import (
	"slices"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelChat Channel = "chat"
)

type Role string

const (
	RoleAgent       Role = "agent"
	RoleAgencyGroup Role = "agency_group"
	RoleManager     Role = "manager"
	RoleTraveler    Role = "traveler"
)

// TemplateKey names a message template. Keys are scoped by event and recipient role.
type TemplateKey string

func KeyFor(eventName string, role Role) TemplateKey {
	return TemplateKey(eventName + "." + string(role))
}

// Action is an actionable choice attached to a message, e.g. a confirm button.
type Action struct {
	Label   string `json:"label"`
	Payload string `json:"payload"`
}

// Variables holds template variables. Values are strings or numbers only.
type Variables map[string]any

type Request struct {
	RecipientID *uuid.UUID  `json:"recipient_id,omitempty"`
	Address     string      `json:"address"`
	Channel     Channel     `json:"channel"`
	Role        Role        `json:"role"`
	TemplateKey TemplateKey `json:"template_key"`
	Variables   Variables   `json:"variables"`
	Text        string      `json:"text,omitempty"`
	Actions     []Action    `json:"actions,omitempty"`
}

// DedupKey identifies a delivery target; two requests with the same key reach the same inbox.
func (r Request) DedupKey() string {
	return string(r.Channel) + ":" + r.Address
}

type DeliveryResult struct {
	Request      Request
	Delivered    bool
	Deduplicated bool
	Err          error
}

// Dedupe drops requests whose (channel, address) was already seen, keeping the first.
// Actions carried by a dropped duplicate are appended to the kept request.
// Requests with an empty address are dropped.
func Dedupe(reqs []Request) []Request {
	if len(reqs) == 0 {
		return nil
	}
	index := make(map[string]int, len(reqs))
	out := make([]Request, 0, len(reqs))
	for _, r := range reqs {
		if r.Address == "" {
			continue
		}
		key := r.DedupKey()
		if i, ok := index[key]; ok {
			out[i].Actions = mergeActions(out[i].Actions, r.Actions)
			continue
		}
		index[key] = len(out)
		r.Actions = slices.Clone(r.Actions)
		out = append(out, r)
	}
	return out
}

func mergeActions(dst, src []Action) []Action {
	for _, a := range src {
		if !slices.Contains(dst, a) {
			dst = append(dst, a)
		}
	}
	return dst
}
