package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// GetChat returns one of the user's chats with its full message history,
// oldest message first.
func (s *Service) GetChat(ctx context.Context, chatID uuid.UUID) (*ChatWithMessages, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	chat, err := s.chats.GetByID(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("chat.GetChat: %w", err)
	}

	messages, err := s.messages.ListByChat(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("chat.GetChat list messages: %w", err)
	}

	return &ChatWithMessages{Chat: chat, Messages: messages}, nil
}

// ListChats returns the user's chats, most recently active first.
func (s *Service) ListChats(ctx context.Context) ([]*domain.Chat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	chats, err := s.chats.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListChats: %w", err)
	}
	return chats, nil
}
