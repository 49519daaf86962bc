package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/pkg/ctxutil"
)

// SendMessage handles one inbound chat message end to end: persist it,
// gather context, extract a trade draft, generate a reply, persist the
// reply and any extracted trade.
//
// The user message is durable before the assistant reply is written. A
// failed extraction or reply generation degrades the response instead of
// failing the request; a failed trade insert is reported via TradeSaved
// unless the store itself is erroring.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (*SendMessageResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxMessageLen); err != nil {
		return nil, err
	}

	// Ownership check before any write.
	if _, err := s.chats.GetByID(ctx, userID, input.ChatID); err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}

	now := time.Now().UTC()
	userMsg := &domain.Message{
		ID:        uuid.New(),
		ChatID:    input.ChatID,
		UserID:    userID,
		Role:      domain.MessageRoleUser,
		Content:   input.Content,
		CreatedAt: now,
	}

	// Phase one: persist the user message, load conversational context,
	// and run trade extraction, all concurrently. The first two are load
	// bearing; extraction never fails the request.
	var (
		history    []*domain.Message
		trades     []*domain.Trade
		extraction llm.Extraction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.messages.Create(gctx, userMsg); err != nil {
			return fmt.Errorf("persist user message: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		// One extra row beyond the replay window, in case the concurrent
		// user-message insert lands in the read.
		history, err = s.messages.ListRecent(gctx, userID, input.ChatID, s.historyTurns+1)
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		trades, err = s.trades.List(gctx, userID, domain.TradeFilter{Limit: s.contextTrades})
		if err != nil {
			return fmt.Errorf("list trades: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		extraction = s.assistant.ExtractTrade(gctx, input.Content, now)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}

	// The history read races the user-message insert; drop the new
	// message if it snuck in, the adapter appends it as the final turn.
	history = withoutMessage(history, userMsg.ID)

	switch extraction.Outcome {
	case llm.OutcomeUnparsable:
		s.log.WarnContext(ctx, "trade extraction unparsable",
			slog.String("chat_id", input.ChatID.String()),
			slog.String("error", errString(extraction.Err)))
	case llm.OutcomeUnavailable:
		s.log.WarnContext(ctx, "trade extraction unavailable",
			slog.String("chat_id", input.ChatID.String()),
			slog.String("error", errString(extraction.Err)))
	}

	replyText, err := s.assistant.GenerateReply(ctx, input.Content, history, trades)
	grounded := err == nil
	if err != nil {
		s.log.WarnContext(ctx, "reply generation failed, using fallback",
			slog.String("chat_id", input.ChatID.String()),
			slog.String("error", err.Error()))
		replyText = llm.FallbackReply
	}

	var draft *domain.TradeDraft
	finalText := replyText
	if extraction.TradeFound() {
		draft = extraction.Draft
		finalText = formatConfirmation(draft) + "\n\n" + replyText
	}

	assistantMsg := &domain.Message{
		ID:        uuid.New(),
		ChatID:    input.ChatID,
		UserID:    userID,
		Role:      domain.MessageRoleAssistant,
		Content:   finalText,
		CreatedAt: time.Now().UTC(),
	}

	// Phase two: persist the assistant reply and the extracted trade
	// together. The reply write is load bearing. A rejected trade insert
	// is reported, not fatal; a storage fault is.
	tradeSaved := true

	g2, g2ctx := errgroup.WithContext(ctx)

	g2.Go(func() error {
		stored, err := s.messages.Create(g2ctx, assistantMsg)
		if err != nil {
			return fmt.Errorf("persist assistant message: %w", err)
		}
		assistantMsg = stored
		return nil
	})

	if draft != nil {
		g2.Go(func() error {
			trade := tradeFromDraft(userID, draft)
			if _, err := s.trades.Create(g2ctx, trade); err != nil {
				if isRejection(err) {
					tradeSaved = false
					s.log.WarnContext(ctx, "extracted trade rejected",
						slog.String("chat_id", input.ChatID.String()),
						slog.String("ticker", trade.Ticker),
						slog.String("error", err.Error()))
					return nil
				}
				return fmt.Errorf("persist trade: %w", err)
			}
			return nil
		})
	}

	if err := g2.Wait(); err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}

	if err := s.chats.Touch(ctx, userID, input.ChatID); err != nil {
		s.log.WarnContext(ctx, "chat touch failed",
			slog.String("chat_id", input.ChatID.String()),
			slog.String("error", err.Error()))
	}

	return &SendMessageResult{
		Message:        assistantMsg,
		TradeExtracted: draft,
		TradeSaved:     tradeSaved,
		Grounded:       grounded,
	}, nil
}

// tradeFromDraft builds a persistable trade from an extraction draft.
// Profit/loss is derived here, never taken from the model.
func tradeFromDraft(userID uuid.UUID, d *domain.TradeDraft) *domain.Trade {
	now := time.Now().UTC()
	return &domain.Trade{
		ID:         uuid.New(),
		UserID:     userID,
		Ticker:     domain.NormalizeTicker(d.Ticker),
		EntryDate:  d.EntryDate,
		EntryPrice: d.EntryPrice,
		Quantity:   d.Quantity,
		ExitDate:   d.ExitDate,
		ExitPrice:  d.ExitPrice,
		Notes:      d.Notes,
		ProfitLoss: domain.ComputeProfitLoss(d.EntryPrice, d.ExitPrice, d.Quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// isRejection reports whether the storage error is a rejection of this
// particular row rather than a sign the store is unhealthy.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrNotFound)
}

func withoutMessage(messages []*domain.Message, id uuid.UUID) []*domain.Message {
	out := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
