package message

import (
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/validation"
)

// Message types.
const (
	TypeText  = "text"
	TypeImage = "image"
	TypeFile  = "file"
)

// Message maps to the messages table. Sender and receiver names are joined
// for display.
type Message struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SenderID   uuid.UUID `db:"sender_id" json:"sender_id"`
	ReceiverID uuid.UUID `db:"receiver_id" json:"receiver_id"`
	Body       string    `db:"body" json:"body"`
	Type       string    `db:"message_type" json:"message_type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	SenderName   string `db:"-" json:"sender_name,omitempty"`
	ReceiverName string `db:"-" json:"receiver_name,omitempty"`
}

// SendRequest is the outbound message form. Type defaults to text.
type SendRequest struct {
	ReceiverID string `json:"receiver_id"`
	Body       string `json:"body"`
	Type       string `json:"message_type"`
}

func (r *SendRequest) Validate() error {
	var v validation.Violations
	v.UUID("receiver_id", r.ReceiverID)
	v.Required("body", r.Body)
	if r.Type != "" {
		v.OneOf("message_type", r.Type, TypeText, TypeImage, TypeFile)
	}
	return v.AsError()
}
