package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// AnalyticsInput bounds the summary to an inclusive entry-date range.
// Nil bounds mean unbounded.
type AnalyticsInput struct {
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i AnalyticsInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Analytics summarizes the authenticated user's trades within the
// optional date range. An empty result set yields the zero-value
// summary, never an error.
func (s *Service) Analytics(ctx context.Context, input AnalyticsInput) (domain.Analytics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Analytics{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Analytics{}, err
	}

	trades, err := s.trades.List(ctx, userID, domain.TradeFilter{From: input.From, To: input.To})
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("list trades: %w", err)
	}

	return Summarize(trades), nil
}
