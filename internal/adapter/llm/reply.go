package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/tradescribe/backend/internal/domain"
)

// FallbackReply is returned to the user when reply generation fails.
// The conversational turn must always produce some reply.
const FallbackReply = "I apologize, but I'm having trouble processing your request right now. Please try again."

const replySystemPrompt = `You are a knowledgeable trading journal assistant. You help the user log trades and reflect on their trading performance.

The user's recent trades are provided below as JSON. Ground your analysis and advice in this actual history; do not invent positions the user never mentioned. Be concise and practical.

Recent trades:
%s`

// tradeContext is the reduced trade projection embedded into prompts.
type tradeContext struct {
	Ticker     string   `json:"ticker"`
	EntryDate  string   `json:"entry_date"`
	EntryPrice float64  `json:"entry_price"`
	ExitPrice  *float64 `json:"exit_price,omitempty"`
	Quantity   float64  `json:"quantity"`
	ProfitLoss *float64 `json:"profit_loss,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// GenerateReply produces a conversational answer grounded in the chat
// history and the user's recent trades. History is capped to the most
// recent turns and trades to the most recent entries per configuration.
// On failure callers substitute FallbackReply.
func (c *Client) GenerateReply(ctx context.Context, userMessage string, history []*domain.Message, trades []*domain.Trade) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msgs := buildTurns(history, c.historyTurns)
	msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)))

	system := fmt.Sprintf(replySystemPrompt, formatTradeContext(trades, c.contextTrades))

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  msgs,
	})
	if err != nil {
		c.log.Warn("reply generation failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: messages call: %v", domain.ErrUpstreamUnavailable, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrUpstreamUnavailable)
	}

	return msg.Content[0].Text, nil
}

// buildTurns converts the most recent limit messages into alternating
// model turns, oldest first.
func buildTurns(history []*domain.Message, limit int) []anthropic.MessageParam {
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	turns := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, m := range history {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == domain.MessageRoleAssistant {
			turns = append(turns, anthropic.NewAssistantMessage(block))
		} else {
			turns = append(turns, anthropic.NewUserMessage(block))
		}
	}
	return turns
}

// formatTradeContext reduces trades to the compact projection and
// marshals them as a JSON array. Returns "[]" for an empty history.
func formatTradeContext(trades []*domain.Trade, limit int) string {
	if limit > 0 && len(trades) > limit {
		trades = trades[:limit]
	}

	projected := make([]tradeContext, len(trades))
	for i, t := range trades {
		projected[i] = tradeContext{
			Ticker:     t.Ticker,
			EntryDate:  t.EntryDate.Format(dateLayout),
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			Quantity:   t.Quantity,
			ProfitLoss: t.ProfitLoss,
			Notes:      t.Notes,
		}
	}

	b, err := json.Marshal(projected)
	if err != nil {
		return "[]"
	}
	return string(b)
}
