package trade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// UpdateTrade applies a partial edit to a trade. Profit/loss is
// recomputed from the resulting state whenever entry price, exit price,
// quantity, or the exit-clearing flag are part of the patch; an
// unchanged patch therefore leaves it unchanged.
func (s *Service) UpdateTrade(ctx context.Context, tradeID uuid.UUID, input UpdateTradeInput) (*domain.Trade, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.trades.GetByID(ctx, userID, tradeID)
	if err != nil {
		return nil, fmt.Errorf("get trade: %w", err)
	}

	next := *current

	if input.Ticker != nil {
		next.Ticker = domain.NormalizeTicker(*input.Ticker)
	}
	if input.EntryDate != nil {
		next.EntryDate = *input.EntryDate
	}
	if input.EntryPrice != nil {
		next.EntryPrice = *input.EntryPrice
	}
	if input.Quantity != nil {
		next.Quantity = *input.Quantity
	}
	if input.ExitDate != nil {
		next.ExitDate = input.ExitDate
	}
	if input.ExitPrice != nil {
		next.ExitPrice = input.ExitPrice
	}
	if input.Notes != nil {
		next.Notes = trimOrNil(input.Notes)
	}
	if input.ClearExit {
		next.ExitDate = nil
		next.ExitPrice = nil
	}

	if input.EntryPrice != nil || input.ExitPrice != nil || input.Quantity != nil || input.ClearExit {
		next.ProfitLoss = domain.ComputeProfitLoss(next.EntryPrice, next.ExitPrice, next.Quantity)
	}

	if next.ExitDate != nil && next.ExitDate.Before(next.EntryDate) {
		return nil, domain.NewValidationError("exit_date", "must not precede entry_date")
	}

	updated, err := s.trades.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("update trade: %w", err)
	}

	s.log.InfoContext(ctx, "trade updated",
		slog.String("user_id", userID.String()),
		slog.String("trade_id", updated.ID.String()),
	)

	return updated, nil
}
