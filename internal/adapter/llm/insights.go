package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tradescribe/backend/internal/domain"
)

const insightsPrompt = `You are a trading performance analyst. Analyze the trades below and produce a narrative assessment.

Trades (JSON, most recent first):
%s

Output ONLY a JSON object with this exact schema:
{
  "summary": "<2-3 sentence overall assessment of the trading record>",
  "insights": ["<specific observation or suggestion>", "..."]
}

Rules:
- Base every statement on the actual trades; never invent positions
- Provide 2-5 insights covering patterns, risk, and concrete improvements
- Output ONLY the JSON, no markdown, no explanations`

// GenerateInsights asks the model for a narrative analysis of recent
// trades. Trades are capped to the configured window. Callers degrade to
// a fixed placeholder on error.
func (c *Client) GenerateInsights(ctx context.Context, trades []*domain.Trade) (domain.Insights, error) {
	prompt := fmt.Sprintf(insightsPrompt, formatTradeContext(trades, c.insightTrades))

	response, err := c.complete(ctx, prompt)
	if err != nil {
		return domain.Insights{}, err
	}

	jsonStr, err := extractJSON(response)
	if err != nil {
		return domain.Insights{}, fmt.Errorf("insights response: %w", err)
	}

	var insights domain.Insights
	if err := json.Unmarshal([]byte(jsonStr), &insights); err != nil {
		return domain.Insights{}, fmt.Errorf("unmarshal insights: %w", err)
	}

	if insights.Insights == nil {
		insights.Insights = []string{}
	}

	return insights, nil
}
