// Package trade implements direct trade journal management: manual
// create, list, update, and delete of trade records.
package trade

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
)

type tradeRepo interface {
	Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	GetByID(ctx context.Context, userID, tradeID uuid.UUID) (*domain.Trade, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)
	Update(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	Delete(ctx context.Context, userID, tradeID uuid.UUID) error
}

// Service provides trade management operations.
type Service struct {
	trades tradeRepo
	log    *slog.Logger
}

// NewService creates a new trade service.
func NewService(
	log *slog.Logger,
	trades tradeRepo,
) *Service {
	return &Service{
		trades: trades,
		log:    log.With("service", "trade"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
