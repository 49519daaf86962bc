package trade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// DeleteTrade removes a trade of the authenticated user.
func (s *Service) DeleteTrade(ctx context.Context, tradeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.trades.Delete(ctx, userID, tradeID); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	s.log.InfoContext(ctx, "trade deleted",
		slog.String("user_id", userID.String()),
		slog.String("trade_id", tradeID.String()),
	)

	return nil
}
