package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// Degraded insight payloads. Model failures must never surface to the
// caller as errors; storage failures still do.
var (
	insightsUnavailable = domain.Insights{Summary: "Analysis unavailable", Insights: []string{}}
	insightsEmpty       = domain.Insights{Summary: "No trades to analyze yet.", Insights: []string{}}
)

// Insights produces a narrative analysis of the authenticated user's
// most recent trades. The model sees at most the configured number of
// trades, newest first.
func (s *Service) Insights(ctx context.Context) (domain.Insights, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Insights{}, domain.ErrUnauthorized
	}

	trades, err := s.trades.List(ctx, userID, domain.TradeFilter{Limit: s.insightTrades})
	if err != nil {
		return domain.Insights{}, fmt.Errorf("list trades: %w", err)
	}

	if len(trades) == 0 {
		return insightsEmpty, nil
	}

	insights, err := s.generator.GenerateInsights(ctx, trades)
	if err != nil {
		s.log.WarnContext(ctx, "insight generation degraded",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		return insightsUnavailable, nil
	}

	return insights, nil
}
