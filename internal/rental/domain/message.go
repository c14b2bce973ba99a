package domain

import "time"

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageDocument MessageType = "document"
)

// Message is the placeholder direct-messaging feature. Only plain text is
// used today; the type column exists so attachments can land later without
// a schema change.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	PropertyID string

	Content string
	Type    MessageType
	IsRead  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
