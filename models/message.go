package models

import "encoding/json"

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks a turn written by the person using the client.
	RoleUser Role = "user"
	// RoleAssistant marks a turn produced by the assistant backend.
	RoleAssistant Role = "assistant"
)

// Message is a single turn of the conversation transcript.
type Message struct {
	Content string `json:"content"`
	Role    Role   `json:"role"`
}

// HistoryRecord is the wire shape of one entry returned by the chat-history
// endpoint. Each record expands to exactly two transcript turns: the user
// message followed by the assistant response.
//
// Metadata, when present, carries an array of property listings attached to
// the assistant response. The backend sends it as a JSON-encoded string, so
// it is kept raw here; decoding happens in the service layer.
type HistoryRecord struct {
	UserMessage string          `json:"user_message"`
	BotResponse string          `json:"bot_response"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}
