package trade

import (
	"github.com/Masterminds/squirrel"

	"github.com/tradescribe/backend/internal/domain"
)

// applyFilter adds the filter's predicates to a select builder.
func applyFilter(sb squirrel.SelectBuilder, f domain.TradeFilter) squirrel.SelectBuilder {
	if f.Ticker != "" {
		sb = sb.Where(squirrel.Eq{"ticker": f.Ticker})
	}
	if f.From != nil {
		sb = sb.Where(squirrel.GtOrEq{"entry_date": *f.From})
	}
	if f.To != nil {
		sb = sb.Where(squirrel.LtOrEq{"entry_date": *f.To})
	}
	if f.OnlyClosed {
		sb = sb.Where(squirrel.NotEq{"exit_price": nil})
	}
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}
	return sb
}
