package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/domain"
)

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Chat) (*domain.Chat, error)
	GetByIDFunc     func(ctx context.Context, userID, chatID uuid.UUID) (*domain.Chat, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Chat, error)
	UpdateTitleFunc func(ctx context.Context, userID, chatID uuid.UUID, title string) (*domain.Chat, error)
	TouchFunc       func(ctx context.Context, userID, chatID uuid.UUID) error
	DeleteFunc      func(ctx context.Context, userID, chatID uuid.UUID) error

	calls struct {
		Create []struct {
			Chat *domain.Chat
		}
		GetByID []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
		}
		UpdateTitle []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
			Title  string
		}
		Touch []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
		}
		Delete []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockUpdateTitle sync.RWMutex
	lockTouch       sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *chatRepoMock) Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error) {
	if mock.CreateFunc == nil {
		panic("chatRepoMock.CreateFunc: method is nil but chatRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Chat *domain.Chat }{Chat: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *chatRepoMock) CreateCalls() []struct{ Chat *domain.Chat } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *chatRepoMock) GetByID(ctx context.Context, userID, chatID uuid.UUID) (*domain.Chat, error) {
	if mock.GetByIDFunc == nil {
		panic("chatRepoMock.GetByIDFunc: method is nil but chatRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
	}{UserID: userID, ChatID: chatID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, chatID)
}

func (mock *chatRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *chatRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Chat, error) {
	if mock.ListFunc == nil {
		panic("chatRepoMock.ListFunc: method is nil but chatRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *chatRepoMock) ListCalls() []struct{ UserID uuid.UUID } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *chatRepoMock) UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*domain.Chat, error) {
	if mock.UpdateTitleFunc == nil {
		panic("chatRepoMock.UpdateTitleFunc: method is nil but chatRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
		Title  string
	}{UserID: userID, ChatID: chatID, Title: title}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, userID, chatID, title)
}

func (mock *chatRepoMock) UpdateTitleCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
	Title  string
} {
	mock.lockUpdateTitle.RLock()
	calls := mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}

func (mock *chatRepoMock) Touch(ctx context.Context, userID, chatID uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("chatRepoMock.TouchFunc: method is nil but chatRepo.Touch was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
	}{UserID: userID, ChatID: chatID}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, userID, chatID)
}

func (mock *chatRepoMock) TouchCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *chatRepoMock) Delete(ctx context.Context, userID, chatID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("chatRepoMock.DeleteFunc: method is nil but chatRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
	}{UserID: userID, ChatID: chatID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, chatID)
}

func (mock *chatRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc     func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByChatFunc func(ctx context.Context, userID, chatID uuid.UUID) ([]*domain.Message, error)
	ListRecentFunc func(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]*domain.Message, error)

	calls struct {
		Create []struct {
			Message *domain.Message
		}
		ListByChat []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
		}
		ListRecent []struct {
			UserID uuid.UUID
			ChatID uuid.UUID
			Limit  int
		}
	}
	lockCreate     sync.RWMutex
	lockListByChat sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Message *domain.Message }{Message: m})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct{ Message *domain.Message } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListByChat(ctx context.Context, userID, chatID uuid.UUID) ([]*domain.Message, error) {
	if mock.ListByChatFunc == nil {
		panic("messageRepoMock.ListByChatFunc: method is nil but messageRepo.ListByChat was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
	}{UserID: userID, ChatID: chatID}
	mock.lockListByChat.Lock()
	mock.calls.ListByChat = append(mock.calls.ListByChat, callInfo)
	mock.lockListByChat.Unlock()
	return mock.ListByChatFunc(ctx, userID, chatID)
}

func (mock *messageRepoMock) ListByChatCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
} {
	mock.lockListByChat.RLock()
	calls := mock.calls.ListByChat
	mock.lockListByChat.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListRecent(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]*domain.Message, error) {
	if mock.ListRecentFunc == nil {
		panic("messageRepoMock.ListRecentFunc: method is nil but messageRepo.ListRecent was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ChatID uuid.UUID
		Limit  int
	}{UserID: userID, ChatID: chatID, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, chatID, limit)
}

func (mock *messageRepoMock) ListRecentCalls() []struct {
	UserID uuid.UUID
	ChatID uuid.UUID
	Limit  int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ tradeRepo = &tradeRepoMock{}

type tradeRepoMock struct {
	CreateFunc func(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	ListFunc   func(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)

	calls struct {
		Create []struct {
			Trade *domain.Trade
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.TradeFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *tradeRepoMock) Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error) {
	if mock.CreateFunc == nil {
		panic("tradeRepoMock.CreateFunc: method is nil but tradeRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Trade *domain.Trade }{Trade: t})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tradeRepoMock) CreateCalls() []struct{ Trade *domain.Trade } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tradeRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error) {
	if mock.ListFunc == nil {
		panic("tradeRepoMock.ListFunc: method is nil but tradeRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.TradeFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *tradeRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.TradeFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ assistant = &assistantMock{}

type assistantMock struct {
	ExtractTradeFunc  func(ctx context.Context, text string, now time.Time) llm.Extraction
	GenerateReplyFunc func(ctx context.Context, userMessage string, history []*domain.Message, trades []*domain.Trade) (string, error)
	GenerateTitleFunc func(ctx context.Context, messages []*domain.Message) (string, error)

	calls struct {
		ExtractTrade []struct {
			Text string
			Now  time.Time
		}
		GenerateReply []struct {
			UserMessage string
			History     []*domain.Message
			Trades      []*domain.Trade
		}
		GenerateTitle []struct {
			Messages []*domain.Message
		}
	}
	lockExtractTrade  sync.RWMutex
	lockGenerateReply sync.RWMutex
	lockGenerateTitle sync.RWMutex
}

func (mock *assistantMock) ExtractTrade(ctx context.Context, text string, now time.Time) llm.Extraction {
	if mock.ExtractTradeFunc == nil {
		panic("assistantMock.ExtractTradeFunc: method is nil but assistant.ExtractTrade was just called")
	}
	callInfo := struct {
		Text string
		Now  time.Time
	}{Text: text, Now: now}
	mock.lockExtractTrade.Lock()
	mock.calls.ExtractTrade = append(mock.calls.ExtractTrade, callInfo)
	mock.lockExtractTrade.Unlock()
	return mock.ExtractTradeFunc(ctx, text, now)
}

func (mock *assistantMock) ExtractTradeCalls() []struct {
	Text string
	Now  time.Time
} {
	mock.lockExtractTrade.RLock()
	calls := mock.calls.ExtractTrade
	mock.lockExtractTrade.RUnlock()
	return calls
}

func (mock *assistantMock) GenerateReply(ctx context.Context, userMessage string, history []*domain.Message, trades []*domain.Trade) (string, error) {
	if mock.GenerateReplyFunc == nil {
		panic("assistantMock.GenerateReplyFunc: method is nil but assistant.GenerateReply was just called")
	}
	callInfo := struct {
		UserMessage string
		History     []*domain.Message
		Trades      []*domain.Trade
	}{UserMessage: userMessage, History: history, Trades: trades}
	mock.lockGenerateReply.Lock()
	mock.calls.GenerateReply = append(mock.calls.GenerateReply, callInfo)
	mock.lockGenerateReply.Unlock()
	return mock.GenerateReplyFunc(ctx, userMessage, history, trades)
}

func (mock *assistantMock) GenerateReplyCalls() []struct {
	UserMessage string
	History     []*domain.Message
	Trades      []*domain.Trade
} {
	mock.lockGenerateReply.RLock()
	calls := mock.calls.GenerateReply
	mock.lockGenerateReply.RUnlock()
	return calls
}

func (mock *assistantMock) GenerateTitle(ctx context.Context, messages []*domain.Message) (string, error) {
	if mock.GenerateTitleFunc == nil {
		panic("assistantMock.GenerateTitleFunc: method is nil but assistant.GenerateTitle was just called")
	}
	mock.lockGenerateTitle.Lock()
	mock.calls.GenerateTitle = append(mock.calls.GenerateTitle, struct{ Messages []*domain.Message }{Messages: messages})
	mock.lockGenerateTitle.Unlock()
	return mock.GenerateTitleFunc(ctx, messages)
}

func (mock *assistantMock) GenerateTitleCalls() []struct{ Messages []*domain.Message } {
	mock.lockGenerateTitle.RLock()
	calls := mock.calls.GenerateTitle
	mock.lockGenerateTitle.RUnlock()
	return calls
}
