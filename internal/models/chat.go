package models

import "time"

// Message sender kinds.
const (
	MessageTypeUser = "user"
	MessageTypeBot  = "bot"
)

// ChatMessage is one turn of the chat history. UserID is a weak reference to
// a User; existence is never enforced.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// InsertChatMessage is the accepted payload for creating a chat message.
// The timestamp is always server-assigned.
type InsertChatMessage struct {
	UserID  *int   `json:"userId"`
	Content string `json:"content" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=user bot"`
}
