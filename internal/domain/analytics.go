package domain

// Analytics summarizes a set of trades. Counts and sums cover closed
// trades only (those with a recorded profit/loss); open trades are
// excluded. Monetary values are rounded to 2 decimal places.
type Analytics struct {
	TotalTrades     int     `json:"total_trades"`
	TotalProfitLoss float64 `json:"total_profit_loss"`
	WinRate         float64 `json:"win_rate"`
	AvgProfit       float64 `json:"avg_profit"`
	AvgLoss         float64 `json:"avg_loss"`
	BestTrade       *Trade  `json:"best_trade,omitempty"`
	WorstTrade      *Trade  `json:"worst_trade,omitempty"`
}

// Insights is the narrative analysis the language model produces from
// recent trading history.
type Insights struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}
