// Package presenter renders chat-facing text.
package presenter

import (
	"strings"
)

type ContentType string

const (
	ContentText     ContentType = "text"
	ContentPhoto    ContentType = "photo"
	ContentDocument ContentType = "document"
)

type ChatStatus string

const (
	ChatActive  ChatStatus = "active"
	ChatPending ChatStatus = "pending"
	ChatClosed  ChatStatus = "closed"
)

type SenderRole string

const (
	SenderTraveler SenderRole = "traveler"
	SenderAgent    SenderRole = "agent"
)

const (
	LangEN = "en"
	LangRU = "ru"
	LangES = "es"

	defaultLanguage = LangEN
	separator       = "──────────────"
)

// ProxyChatMessage is a message relayed between a traveler and an agency.
type ProxyChatMessage struct {
	SenderRole  SenderRole
	SenderLabel string
	IsOperator  bool
	Content     string
	ContentType ContentType
	ChatStatus  ChatStatus
	AgencyName  string
	Language    string
}

type locale struct {
	statuses     map[ChatStatus]string
	senders      map[SenderRole]string
	operator     string
	placeholders map[ContentType]string
}

var locales = map[string]locale{
	LangEN: {
		statuses: map[ChatStatus]string{
			ChatActive:  "Active",
			ChatPending: "Pending",
			ChatClosed:  "Closed",
		},
		senders: map[SenderRole]string{
			SenderTraveler: "Traveler",
			SenderAgent:    "Agent",
		},
		operator: "Operator",
		placeholders: map[ContentType]string{
			ContentPhoto:    "[photo]",
			ContentDocument: "[document]",
		},
	},
	LangRU: {
		statuses: map[ChatStatus]string{
			ChatActive:  "Активен",
			ChatPending: "Ожидает ответа",
			ChatClosed:  "Закрыт",
		},
		senders: map[SenderRole]string{
			SenderTraveler: "Путешественник",
			SenderAgent:    "Агент",
		},
		operator: "Оператор",
		placeholders: map[ContentType]string{
			ContentPhoto:    "[фото]",
			ContentDocument: "[документ]",
		},
	},
	LangES: {
		statuses: map[ChatStatus]string{
			ChatActive:  "Activo",
			ChatPending: "Pendiente",
			ChatClosed:  "Cerrado",
		},
		senders: map[SenderRole]string{
			SenderTraveler: "Viajero",
			SenderAgent:    "Agente",
		},
		operator: "Operador",
		placeholders: map[ContentType]string{
			ContentPhoto:    "[foto]",
			ContentDocument: "[documento]",
		},
	},
}

var statusIcons = map[ChatStatus]string{
	ChatActive:  "🟢",
	ChatPending: "🟡",
	ChatClosed:  "🔴",
}

var senderIcons = map[SenderRole]string{
	SenderTraveler: "👤",
	SenderAgent:    "🏢",
}

const (
	operatorIcon      = "🛡️"
	unknownStatusIcon = "⚪"
	unknownSenderIcon = "💬"
)

// SupportedLanguages lists the language codes FormatProxyChatMessage localizes.
func SupportedLanguages() []string {
	return []string{LangEN, LangRU, LangES}
}

// FormatProxyChatMessage renders:
//
//	<status icon> <status> | <agency>
//	──────────────
//	<sender icon> <sender> (<label>):
//	<body>
//
// Unknown or empty languages fall back to English. Photo and document bodies are
// replaced by a localized placeholder.
func FormatProxyChatMessage(m ProxyChatMessage) string {
	loc, ok := locales[strings.ToLower(strings.TrimSpace(m.Language))]
	if !ok {
		loc = locales[defaultLanguage]
	}

	var b strings.Builder
	b.WriteString(statusLine(loc, m.ChatStatus))
	b.WriteString(" | ")
	b.WriteString(m.AgencyName)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(senderLine(loc, m))
	b.WriteString("\n")
	b.WriteString(body(loc, m))
	return b.String()
}

func statusLine(loc locale, status ChatStatus) string {
	label, ok := loc.statuses[status]
	if !ok {
		return unknownStatusIcon + " " + string(status)
	}
	return statusIcons[status] + " " + label
}

func senderLine(loc locale, m ProxyChatMessage) string {
	var icon, role string
	switch {
	case m.IsOperator:
		icon, role = operatorIcon, loc.operator
	case loc.senders[m.SenderRole] != "":
		icon, role = senderIcons[m.SenderRole], loc.senders[m.SenderRole]
	default:
		icon, role = unknownSenderIcon, string(m.SenderRole)
	}

	line := icon + " " + role
	if label := strings.TrimSpace(m.SenderLabel); label != "" {
		line += " (" + label + ")"
	}
	return line + ":"
}

func body(loc locale, m ProxyChatMessage) string {
	if placeholder, ok := loc.placeholders[m.ContentType]; ok {
		return placeholder
	}
	return m.Content
}
