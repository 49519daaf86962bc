package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// GetTrade returns one trade of the authenticated user.
func (s *Service) GetTrade(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.trades.GetByID(ctx, userID, tradeID)
	if err != nil {
		return nil, fmt.Errorf("get trade: %w", err)
	}

	return t, nil
}
