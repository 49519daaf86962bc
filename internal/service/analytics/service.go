// Package analytics computes performance statistics over the trade
// journal and produces model-generated narrative insights.
package analytics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
)

type tradeRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)
}

type insightsGenerator interface {
	GenerateInsights(ctx context.Context, trades []*domain.Trade) (domain.Insights, error)
}

// Service provides analytics operations.
type Service struct {
	trades        tradeRepo
	generator     insightsGenerator
	insightTrades int
	log           *slog.Logger
}

// NewService creates a new analytics service. insightTrades bounds how
// many recent trades are sent for narrative analysis.
func NewService(
	log *slog.Logger,
	trades tradeRepo,
	generator insightsGenerator,
	insightTrades int,
) *Service {
	return &Service{
		trades:        trades,
		generator:     generator,
		insightTrades: insightTrades,
		log:           log.With("service", "analytics"),
	}
}
