package message

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for direct messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error

	// Conversation returns all messages between the two users, in either
	// direction, oldest first.
	Conversation(ctx context.Context, userA, userB uuid.UUID) ([]*Message, error)
}
