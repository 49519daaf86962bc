package analytics

import (
	"math"

	"github.com/tradescribe/backend/internal/domain"
)

// Summarize computes aggregate performance statistics over a set of
// trades. Only closed trades (profit/loss present) contribute to counts
// and sums; open positions are ignored. Break-even trades count toward
// the total but belong to neither the win nor the loss bucket, so
// win rate uses closed trades as its denominator and can be below 100
// even with zero losing trades.
//
// Internal computation runs at full precision; rounding to 2 decimal
// places happens once at the boundary.
func Summarize(trades []*domain.Trade) domain.Analytics {
	var (
		closed                []*domain.Trade
		totalPL               float64
		winSum, lossSum       float64
		winCount, lossCount   int
		bestTrade, worstTrade *domain.Trade
	)

	for _, t := range trades {
		if t.ProfitLoss == nil {
			continue
		}
		pl := *t.ProfitLoss
		closed = append(closed, t)
		totalPL += pl

		switch {
		case pl > 0:
			winSum += pl
			winCount++
		case pl < 0:
			lossSum += pl
			lossCount++
		}

		if bestTrade == nil || pl > *bestTrade.ProfitLoss {
			bestTrade = t
		}
		if worstTrade == nil || pl < *worstTrade.ProfitLoss {
			worstTrade = t
		}
	}

	a := domain.Analytics{
		TotalTrades:     len(closed),
		TotalProfitLoss: round2(totalPL),
		BestTrade:       bestTrade,
		WorstTrade:      worstTrade,
	}

	if len(closed) > 0 {
		a.WinRate = round2(100 * float64(winCount) / float64(len(closed)))
	}
	if winCount > 0 {
		a.AvgProfit = round2(winSum / float64(winCount))
	}
	if lossCount > 0 {
		a.AvgLoss = round2(lossSum / float64(lossCount))
	}

	return a
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
