package trade

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// CreateTrade logs a new trade for the authenticated user. Profit/loss
// is derived here and never taken from the caller.
func (s *Service) CreateTrade(ctx context.Context, input CreateTradeInput) (*domain.Trade, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Trade{
		ID:         uuid.New(),
		UserID:     userID,
		Ticker:     domain.NormalizeTicker(input.Ticker),
		EntryDate:  input.EntryDate,
		EntryPrice: input.EntryPrice,
		Quantity:   input.Quantity,
		ExitDate:   input.ExitDate,
		ExitPrice:  input.ExitPrice,
		Notes:      trimOrNil(input.Notes),
		ProfitLoss: domain.ComputeProfitLoss(input.EntryPrice, input.ExitPrice, input.Quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.trades.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create trade: %w", err)
	}

	s.log.InfoContext(ctx, "trade created",
		slog.String("user_id", userID.String()),
		slog.String("trade_id", created.ID.String()),
		slog.String("ticker", created.Ticker),
	)

	return created, nil
}
