package chat

import "github.com/tradescribe/backend/internal/domain"

// SendMessageResult is returned by the SendMessage operation.
type SendMessageResult struct {
	// Message is the persisted assistant reply. Its content is identical
	// to what was stored, confirmation block included.
	Message *domain.Message
	// TradeExtracted carries the draft when the inbound text described a
	// trade, nil otherwise.
	TradeExtracted *domain.TradeDraft
	// TradeSaved is false when a draft was extracted but the insert was
	// rejected. It is true whenever TradeExtracted is nil.
	TradeSaved bool
	// Grounded reports whether the reply came from the model rather than
	// the fallback sentence.
	Grounded bool
}

// ChatWithMessages pairs a chat with its full ordered history.
type ChatWithMessages struct {
	Chat     *domain.Chat
	Messages []*domain.Message
}
