package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// GenerateTitle asks the model to title the chat from its opening messages
// and persists the result. A generation failure leaves the stored title
// untouched and is surfaced to the caller.
func (s *Service) GenerateTitle(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Ownership check before any model call.
	if _, err := s.chats.GetByID(ctx, userID, chatID); err != nil {
		return nil, fmt.Errorf("chat.GenerateTitle: %w", err)
	}

	messages, err := s.messages.ListByChat(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("chat.GenerateTitle list messages: %w", err)
	}
	if len(messages) == 0 {
		return nil, domain.NewValidationError("chat_id", "chat has no messages to title")
	}

	title, err := s.assistant.GenerateTitle(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("chat.GenerateTitle: %w", err)
	}

	chat, err := s.chats.UpdateTitle(ctx, userID, chatID, title)
	if err != nil {
		return nil, fmt.Errorf("chat.GenerateTitle update: %w", err)
	}

	s.log.InfoContext(ctx, "chat titled",
		slog.String("chat_id", chatID.String()),
		slog.String("title", title))

	return chat, nil
}
