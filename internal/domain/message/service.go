// Package message implements direct messaging between patients and doctors.
package message

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
)

// ErrReceiverNotFound is returned when the receiver id does not resolve to
// an account.
var ErrReceiverNotFound = errors.New("receiver not found")

// UserLookup resolves the receiving account. user.Repository satisfies it.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type Service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) *Service {
	return &Service{repo: repo, users: users}
}

// Send stores a message from the sender to the receiver.
func (s *Service) Send(ctx context.Context, senderID uuid.UUID, req *SendRequest) (*Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Type == "" {
		req.Type = TypeText
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, ErrReceiverNotFound
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	m := &Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       req.Body,
		Type:       req.Type,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Conversation returns the thread between the caller and the other user.
func (s *Service) Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*Message, error) {
	return s.repo.Conversation(ctx, userID, otherUserID)
}
