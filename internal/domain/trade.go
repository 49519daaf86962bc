package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Trade represents a logged position: an entry, an optional exit, and the
// profit/loss derived from them. A trade is owned by exactly one user.
type Trade struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Ticker     string
	EntryDate  time.Time
	EntryPrice float64
	Quantity   float64
	ExitDate   *time.Time
	ExitPrice  *float64
	Notes      *string

	// ProfitLoss is derived: present iff ExitPrice is present, and then
	// equal to (exit - entry) * quantity. It is recomputed on every write
	// that touches entry price, exit price, or quantity, never trusted
	// from external input.
	ProfitLoss *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the position has been exited.
func (t *Trade) IsClosed() bool { return t.ExitPrice != nil }

// TradeDraft is the ephemeral shape produced by language-model extraction.
// It has no identity, ownership, or derived fields; it exists only between
// extraction and persistence.
type TradeDraft struct {
	Ticker     string     `json:"ticker"`
	EntryDate  time.Time  `json:"entry_date"`
	EntryPrice float64    `json:"entry_price"`
	Quantity   float64    `json:"quantity"`
	ExitDate   *time.Time `json:"exit_date,omitempty"`
	ExitPrice  *float64   `json:"exit_price,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// ComputeProfitLoss derives profit/loss from entry price, optional exit
// price, and quantity. Returns nil when the position is still open.
func ComputeProfitLoss(entryPrice float64, exitPrice *float64, quantity float64) *float64 {
	if exitPrice == nil {
		return nil
	}
	pl := (*exitPrice - entryPrice) * quantity
	return &pl
}

// TradeFilter narrows trade listings. Zero value means no filtering:
// all trades, newest entry first.
type TradeFilter struct {
	// Ticker filters to a single symbol (already normalized to upper case).
	Ticker string
	// From/To bound entry date inclusively.
	From *time.Time
	To   *time.Time
	// OnlyClosed keeps trades with a recorded exit.
	OnlyClosed bool
	// Limit caps the number of rows. 0 means no limit.
	Limit int
}

// NormalizeTicker prepares a ticker symbol for storage and comparison:
// trims whitespace and uppercases.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
