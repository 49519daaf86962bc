package llm

import "github.com/tradescribe/backend/internal/domain"

// ExtractionOutcome classifies what happened during trade extraction.
// The chat pipeline treats everything except OutcomeTrade as "no trade",
// but keeps the branches distinct so callers (and tests) can tell a
// deliberate model "null" from a broken response or a dead upstream.
type ExtractionOutcome int

const (
	// OutcomeTrade: the model returned a complete trade object.
	OutcomeTrade ExtractionOutcome = iota
	// OutcomeNoTrade: the model explicitly signaled no trade in the text.
	OutcomeNoTrade
	// OutcomeUnparsable: the model answered but the output was not a
	// usable trade object (bad JSON, missing ticker).
	OutcomeUnparsable
	// OutcomeUnavailable: the model could not be reached at all.
	OutcomeUnavailable
)

func (o ExtractionOutcome) String() string {
	switch o {
	case OutcomeTrade:
		return "trade"
	case OutcomeNoTrade:
		return "no_trade"
	case OutcomeUnparsable:
		return "unparsable"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Extraction is the tagged result of ExtractTrade.
type Extraction struct {
	Outcome ExtractionOutcome
	// Draft is set only when Outcome is OutcomeTrade.
	Draft *domain.TradeDraft
	// Err holds the underlying cause for OutcomeUnparsable and
	// OutcomeUnavailable. Diagnostic only; never surfaced to chat users.
	Err error
}

// TradeFound reports whether the extraction produced a persistable draft.
func (e Extraction) TradeFound() bool {
	return e.Outcome == OutcomeTrade && e.Draft != nil
}
