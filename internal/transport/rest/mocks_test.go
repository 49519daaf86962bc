package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/internal/service/analytics"
	"github.com/tradescribe/backend/internal/service/auth"
	"github.com/tradescribe/backend/internal/service/chat"
	"github.com/tradescribe/backend/internal/service/trade"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc  func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error
	MeFunc       func(ctx context.Context) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error { return m.LogoutFunc(ctx) }

func (m *authServiceMock) Me(ctx context.Context) (*domain.User, error) { return m.MeFunc(ctx) }

var _ chatService = &chatServiceMock{}

type chatServiceMock struct {
	CreateChatFunc    func(ctx context.Context, input chat.CreateChatInput) (*domain.Chat, error)
	ListChatsFunc     func(ctx context.Context) ([]*domain.Chat, error)
	GetChatFunc       func(ctx context.Context, chatID uuid.UUID) (*chat.ChatWithMessages, error)
	DeleteChatFunc    func(ctx context.Context, chatID uuid.UUID) error
	SendMessageFunc   func(ctx context.Context, input chat.SendMessageInput) (*chat.SendMessageResult, error)
	GenerateTitleFunc func(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error)
}

func (m *chatServiceMock) CreateChat(ctx context.Context, input chat.CreateChatInput) (*domain.Chat, error) {
	return m.CreateChatFunc(ctx, input)
}

func (m *chatServiceMock) ListChats(ctx context.Context) ([]*domain.Chat, error) {
	return m.ListChatsFunc(ctx)
}

func (m *chatServiceMock) GetChat(ctx context.Context, chatID uuid.UUID) (*chat.ChatWithMessages, error) {
	return m.GetChatFunc(ctx, chatID)
}

func (m *chatServiceMock) DeleteChat(ctx context.Context, chatID uuid.UUID) error {
	return m.DeleteChatFunc(ctx, chatID)
}

func (m *chatServiceMock) SendMessage(ctx context.Context, input chat.SendMessageInput) (*chat.SendMessageResult, error) {
	return m.SendMessageFunc(ctx, input)
}

func (m *chatServiceMock) GenerateTitle(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error) {
	return m.GenerateTitleFunc(ctx, chatID)
}

var _ tradeService = &tradeServiceMock{}

type tradeServiceMock struct {
	CreateTradeFunc func(ctx context.Context, input trade.CreateTradeInput) (*domain.Trade, error)
	GetTradeFunc    func(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error)
	ListTradesFunc  func(ctx context.Context, input trade.ListTradesInput) ([]*domain.Trade, error)
	UpdateTradeFunc func(ctx context.Context, tradeID uuid.UUID, input trade.UpdateTradeInput) (*domain.Trade, error)
	DeleteTradeFunc func(ctx context.Context, tradeID uuid.UUID) error
}

func (m *tradeServiceMock) CreateTrade(ctx context.Context, input trade.CreateTradeInput) (*domain.Trade, error) {
	return m.CreateTradeFunc(ctx, input)
}

func (m *tradeServiceMock) GetTrade(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error) {
	return m.GetTradeFunc(ctx, tradeID)
}

func (m *tradeServiceMock) ListTrades(ctx context.Context, input trade.ListTradesInput) ([]*domain.Trade, error) {
	return m.ListTradesFunc(ctx, input)
}

func (m *tradeServiceMock) UpdateTrade(ctx context.Context, tradeID uuid.UUID, input trade.UpdateTradeInput) (*domain.Trade, error) {
	return m.UpdateTradeFunc(ctx, tradeID, input)
}

func (m *tradeServiceMock) DeleteTrade(ctx context.Context, tradeID uuid.UUID) error {
	return m.DeleteTradeFunc(ctx, tradeID)
}

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	AnalyticsFunc func(ctx context.Context, input analytics.AnalyticsInput) (domain.Analytics, error)
	InsightsFunc  func(ctx context.Context) (domain.Insights, error)
}

func (m *analyticsServiceMock) Analytics(ctx context.Context, input analytics.AnalyticsInput) (domain.Analytics, error) {
	return m.AnalyticsFunc(ctx, input)
}

func (m *analyticsServiceMock) Insights(ctx context.Context) (domain.Insights, error) {
	return m.InsightsFunc(ctx)
}

var _ extractor = &extractorMock{}

type extractorMock struct {
	ExtractTradeFunc func(ctx context.Context, text string, now time.Time) llm.Extraction
}

func (m *extractorMock) ExtractTrade(ctx context.Context, text string, now time.Time) llm.Extraction {
	return m.ExtractTradeFunc(ctx, text, now)
}
