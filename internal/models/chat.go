package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatMessages is stored verbatim as a jsonb column.
type ChatMessages []ChatMessage

func (m ChatMessages) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *ChatMessages) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("unsupported chat messages type %T", src)
	}
}

type Chat struct {
	ChatID         uuid.UUID    `json:"chat_id" db:"chat_id"`
	UserID         uuid.UUID    `json:"user_id" db:"user_id"`
	Title          string       `json:"title" db:"title"`
	VerseReference *string      `json:"verse_reference" db:"verse_reference"`
	Messages       ChatMessages `json:"messages" db:"messages"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

type ChatList struct {
	TotalCount int     `json:"total_count"`
	TotalPages int     `json:"total_pages"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	HasMore    bool    `json:"has_more"`
	Chats      []*Chat `json:"chats"`
}

type ChatInput struct {
	Message string      `json:"message" validate:"required"`
	ChatID  *uuid.UUID  `json:"chat_id"`
	Verse   *BibleVerse `json:"verse"`
}
