package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeCareerPath MessageType = "career-path"
	MessageTypeJobInsight MessageType = "job-insight"
	MessageTypeRoadmap    MessageType = "roadmap"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeCareerPath, MessageTypeJobInsight, MessageTypeRoadmap:
		return true
	}
	return false
}

type Message struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Type      MessageType `json:"msg_type"`
	Prompt    *string     `json:"prompt"`
	Response  string      `json:"response"`
	Tokens    int         `json:"tokens"`
	CreatedAt time.Time   `json:"created_at"`
}

// Completion is the result of a single call to the text generation provider.
type Completion struct {
	Text   string
	Tokens int
}
