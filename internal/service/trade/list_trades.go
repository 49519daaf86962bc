package trade

import (
	"context"
	"fmt"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// ListTrades returns the authenticated user's trades, newest entry
// first, optionally narrowed by ticker and entry-date range.
func (s *Service) ListTrades(ctx context.Context, input ListTradesInput) ([]*domain.Trade, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TradeFilter{
		Ticker: domain.NormalizeTicker(input.Ticker),
		From:   input.From,
		To:     input.To,
	}

	trades, err := s.trades.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}

	return trades, nil
}
