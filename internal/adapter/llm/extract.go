package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tradescribe/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ExtractTrade asks the model whether the message describes a trade and,
// if so, returns a structured draft. It never returns an error: every
// failure mode is folded into the Extraction's outcome tag so the chat
// pipeline can degrade to "no trade" without special-casing.
func (c *Client) ExtractTrade(ctx context.Context, text string, now time.Time) Extraction {
	prompt := buildExtractionPrompt(text, now)

	response, err := c.complete(ctx, prompt)
	if err != nil {
		c.log.Warn("trade extraction call failed", slog.Any("error", err))
		return Extraction{Outcome: OutcomeUnavailable, Err: err}
	}

	return parseExtraction(response, now)
}

func buildExtractionPrompt(text string, now time.Time) string {
	return fmt.Sprintf(`You are a trade extraction engine for a trading journal.

Analyze the user's message and decide whether it describes a completed or opened stock trade.

User message:
%s

If the message describes a trade, output ONLY a JSON object with this exact schema:
{
  "ticker": "<stock symbol>",
  "entry_date": "<YYYY-MM-DD>",
  "entry_price": <number>,
  "quantity": <number>,
  "exit_date": "<YYYY-MM-DD or omit if still open>",
  "exit_price": <number or omit if still open>,
  "notes": "<brief note or omit>"
}

If the message does NOT describe a trade (questions, analysis requests, small talk), output ONLY the word null.

Rules:
- Today's date is %s; use it when the user says "today" or gives no date
- ticker is mandatory for a trade; never invent one
- quantity defaults to 1 when the user does not state an amount
- Output ONLY the JSON object or null, no markdown, no explanations`, text, now.Format(dateLayout))
}

// draftPayload mirrors the JSON grammar the extraction prompt demands.
type draftPayload struct {
	Ticker     string   `json:"ticker"`
	EntryDate  string   `json:"entry_date"`
	EntryPrice float64  `json:"entry_price"`
	Quantity   *float64 `json:"quantity"`
	ExitDate   string   `json:"exit_date"`
	ExitPrice  *float64 `json:"exit_price"`
	Notes      *string  `json:"notes"`
}

// parseExtraction interprets the raw model response. Defaults (quantity 1,
// entry date = today) are applied here, not by callers.
func parseExtraction(response string, now time.Time) Extraction {
	trimmed := strings.TrimSpace(response)

	// Explicit "no trade" signal.
	if strings.EqualFold(trimmed, "null") {
		return Extraction{Outcome: OutcomeNoTrade}
	}

	jsonStr, err := extractJSON(trimmed)
	if err != nil {
		// No JSON object at all. A plain-text answer usually means the
		// model chose to explain instead of emitting null; treat any
		// response mentioning null as a no-trade signal.
		if strings.Contains(strings.ToLower(trimmed), "null") {
			return Extraction{Outcome: OutcomeNoTrade}
		}
		return Extraction{Outcome: OutcomeUnparsable, Err: err}
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return Extraction{Outcome: OutcomeUnparsable, Err: fmt.Errorf("unmarshal draft: %w", err)}
	}

	ticker := domain.NormalizeTicker(payload.Ticker)
	if ticker == "" {
		return Extraction{Outcome: OutcomeUnparsable, Err: fmt.Errorf("draft missing ticker")}
	}

	draft := &domain.TradeDraft{
		Ticker:     ticker,
		EntryPrice: payload.EntryPrice,
		Quantity:   1,
		ExitPrice:  payload.ExitPrice,
		Notes:      payload.Notes,
	}

	if payload.Quantity != nil {
		draft.Quantity = *payload.Quantity
	}

	// Prices and quantity must be positive reals; the model sometimes emits
	// a bare ticker or garbage numbers, and those must not reach storage.
	if draft.EntryPrice <= 0 {
		return Extraction{Outcome: OutcomeUnparsable, Err: fmt.Errorf("draft entry_price %v is not positive", draft.EntryPrice)}
	}
	if draft.Quantity <= 0 {
		return Extraction{Outcome: OutcomeUnparsable, Err: fmt.Errorf("draft quantity %v is not positive", draft.Quantity)}
	}
	if draft.ExitPrice != nil && *draft.ExitPrice <= 0 {
		return Extraction{Outcome: OutcomeUnparsable, Err: fmt.Errorf("draft exit_price %v is not positive", *draft.ExitPrice)}
	}

	draft.EntryDate = parseDateOr(payload.EntryDate, now)

	if payload.ExitDate != "" {
		if exitDate, err := time.Parse(dateLayout, payload.ExitDate); err == nil {
			draft.ExitDate = &exitDate
		}
	}
	// A closed trade without an exit date closes today.
	if draft.ExitPrice != nil && draft.ExitDate == nil {
		today := dateOnly(now)
		draft.ExitDate = &today
	}

	return Extraction{Outcome: OutcomeTrade, Draft: draft}
}

func parseDateOr(s string, fallback time.Time) time.Time {
	if s != "" {
		if d, err := time.Parse(dateLayout, s); err == nil {
			return d
		}
	}
	return dateOnly(fallback)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
