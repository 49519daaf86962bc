package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/config"
	"github.com/tradescribe/backend/internal/domain"
)

// chatRepo defines the chat repository interface needed by chat service.
type chatRepo interface {
	Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error)
	GetByID(ctx context.Context, userID, chatID uuid.UUID) (*domain.Chat, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Chat, error)
	UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*domain.Chat, error)
	Touch(ctx context.Context, userID, chatID uuid.UUID) error
	Delete(ctx context.Context, userID, chatID uuid.UUID) error
}

// messageRepo defines the message repository interface needed by chat service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByChat(ctx context.Context, userID, chatID uuid.UUID) ([]*domain.Message, error)
	ListRecent(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]*domain.Message, error)
}

// tradeRepo defines the trade repository interface needed by chat service.
type tradeRepo interface {
	Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)
}

// assistant defines the language-model operations needed by chat service.
type assistant interface {
	ExtractTrade(ctx context.Context, text string, now time.Time) llm.Extraction
	GenerateReply(ctx context.Context, userMessage string, history []*domain.Message, trades []*domain.Trade) (string, error)
	GenerateTitle(ctx context.Context, messages []*domain.Message) (string, error)
}

// Service implements chat operations, including the inbound-message pipeline.
type Service struct {
	log           *slog.Logger
	chats         chatRepo
	messages      messageRepo
	trades        tradeRepo
	assistant     assistant
	historyTurns  int
	contextTrades int
	maxMessageLen int
}

// NewService creates a new chat service instance.
func NewService(
	logger *slog.Logger,
	chats chatRepo,
	messages messageRepo,
	trades tradeRepo,
	assistant assistant,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "chat"),
		chats:         chats,
		messages:      messages,
		trades:        trades,
		assistant:     assistant,
		historyTurns:  cfg.HistoryTurns,
		contextTrades: cfg.ContextTrades,
		maxMessageLen: cfg.MaxMessageLen,
	}
}
