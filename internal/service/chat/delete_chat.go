package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// DeleteChat removes one of the user's chats. Messages go with it via
// the cascading foreign key.
func (s *Service) DeleteChat(ctx context.Context, chatID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.chats.Delete(ctx, userID, chatID); err != nil {
		return fmt.Errorf("chat.DeleteChat: %w", err)
	}

	s.log.InfoContext(ctx, "chat deleted",
		slog.String("chat_id", chatID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
