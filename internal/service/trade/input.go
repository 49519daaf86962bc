package trade

import (
	"strings"
	"time"

	"github.com/tradescribe/backend/internal/domain"
)

// CreateTradeInput holds the parameters for logging a trade manually.
type CreateTradeInput struct {
	Ticker     string
	EntryDate  time.Time
	EntryPrice float64
	Quantity   float64
	ExitDate   *time.Time
	ExitPrice  *float64
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i CreateTradeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Ticker) == "" {
		errs = append(errs, domain.FieldError{Field: "ticker", Message: "required"})
	}
	if i.EntryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	}
	if i.EntryPrice <= 0 {
		errs = append(errs, domain.FieldError{Field: "entry_price", Message: "must be positive"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.ExitPrice != nil && *i.ExitPrice <= 0 {
		errs = append(errs, domain.FieldError{Field: "exit_price", Message: "must be positive"})
	}
	if i.ExitDate != nil && !i.EntryDate.IsZero() && i.ExitDate.Before(i.EntryDate) {
		errs = append(errs, domain.FieldError{Field: "exit_date", Message: "must not precede entry_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTradeInput holds a partial trade edit. Nil fields are left
// untouched. ClearExit reopens the position: it clears exit date, exit
// price, and the derived profit/loss together.
type UpdateTradeInput struct {
	Ticker     *string
	EntryDate  *time.Time
	EntryPrice *float64
	Quantity   *float64
	ExitDate   *time.Time
	ExitPrice  *float64
	Notes      *string
	ClearExit  bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTradeInput) Validate() error {
	var errs []domain.FieldError

	if i.Ticker != nil && strings.TrimSpace(*i.Ticker) == "" {
		errs = append(errs, domain.FieldError{Field: "ticker", Message: "must not be empty"})
	}
	if i.EntryPrice != nil && *i.EntryPrice <= 0 {
		errs = append(errs, domain.FieldError{Field: "entry_price", Message: "must be positive"})
	}
	if i.Quantity != nil && *i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.ExitPrice != nil && *i.ExitPrice <= 0 {
		errs = append(errs, domain.FieldError{Field: "exit_price", Message: "must be positive"})
	}
	if i.ClearExit && (i.ExitDate != nil || i.ExitPrice != nil) {
		errs = append(errs, domain.FieldError{Field: "clear_exit", Message: "cannot clear and set exit fields together"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTradesInput holds the parameters for listing trades.
type ListTradesInput struct {
	Ticker string
	From   *time.Time
	To     *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListTradesInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
