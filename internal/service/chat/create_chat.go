package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

const defaultChatTitle = "New Chat"

// CreateChat opens a new conversation for the authenticated user.
func (s *Service) CreateChat(ctx context.Context, input CreateChatInput) (*domain.Chat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Title == "" {
		input.Title = defaultChatTitle
	}

	now := time.Now().UTC()
	chat, err := s.chats.Create(ctx, &domain.Chat{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("chat.CreateChat: %w", err)
	}

	s.log.InfoContext(ctx, "chat created",
		slog.String("chat_id", chat.ID.String()),
		slog.String("user_id", userID.String()))

	return chat, nil
}
