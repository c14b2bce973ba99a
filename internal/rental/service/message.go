package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

// MessageService is the placeholder direct-messaging feature. Plain text
// only; no threading, no attachments.
type MessageService struct {
	Store store.Store
}

// Send delivers a text message from the caller to another user.
func (s *MessageService) Send(ctx context.Context, sender domain.User, receiverID, propertyID, content string) (domain.Message, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(content) == "" || receiverID == sender.ID {
		return domain.Message{}, ErrInvalidRequest
	}
	if _, err := s.Store.Users().GetUserByID(ctx, receiverID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Message{}, ErrNotFound
		}
		return domain.Message{}, err
	}

	m := domain.Message{
		ID:         idx.New().String(),
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		PropertyID: propertyID,
		Content:    content,
		Type:       domain.MessageText,
	}
	if err := s.Store.Messages().CreateMessage(ctx, m); err != nil {
		log.Error("failed to create message", slog.Any("error", err))
		return domain.Message{}, err
	}
	return s.Store.Messages().GetMessageByID(ctx, m.ID)
}

// Conversation returns the messages between the caller and another user,
// oldest first.
func (s *MessageService) Conversation(ctx context.Context, caller domain.User, otherID string) ([]domain.Message, error) {
	return s.Store.Messages().ListConversation(ctx, caller.ID, otherID)
}

// MarkRead flags a message as read. Only the receiver may do so.
func (s *MessageService) MarkRead(ctx context.Context, caller domain.User, messageID string) error {
	m, err := s.Store.Messages().GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if m.ReceiverID != caller.ID {
		return ErrForbidden
	}
	return s.Store.Messages().MarkRead(ctx, messageID)
}
