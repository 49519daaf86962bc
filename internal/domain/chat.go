package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation session between one user and the assistant.
type Chat struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

func (r MessageRole) String() string { return string(r) }

func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleAssistant:
		return true
	}
	return false
}

// Message is one turn in a chat. Messages are append-only: the core never
// updates or deletes them, and replays them into model context ordered by
// CreatedAt ascending.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	UserID    uuid.UUID
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}
