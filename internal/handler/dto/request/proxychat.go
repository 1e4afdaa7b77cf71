package request

import "travel-broker/internal/handler/presenter"

type RenderProxyChatRequest struct {
	SenderRole  string `json:"sender_role" binding:"required,oneof=traveler agent"`
	SenderLabel string `json:"sender_label" binding:"max=100"`
	IsOperator  bool   `json:"is_operator"`
	Content     string `json:"content" binding:"max=4096"`
	ContentType string `json:"content_type" binding:"omitempty,oneof=text photo document"`
	ChatStatus  string `json:"chat_status" binding:"required"`
	AgencyName  string `json:"agency_name" binding:"required,max=200"`
	Language    string `json:"language" binding:"omitempty,max=8"`
}

func (r RenderProxyChatRequest) ToMessage() presenter.ProxyChatMessage {
	ct := presenter.ContentType(r.ContentType)
	if ct == "" {
		ct = presenter.ContentText
	}
	return presenter.ProxyChatMessage{
		SenderRole:  presenter.SenderRole(r.SenderRole),
		SenderLabel: r.SenderLabel,
		IsOperator:  r.IsOperator,
		Content:     r.Content,
		ContentType: ct,
		ChatStatus:  presenter.ChatStatus(r.ChatStatus),
		AgencyName:  r.AgencyName,
		Language:    r.Language,
	}
}
