package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
)

var _ tradeRepo = &tradeRepoMock{}

type tradeRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)

	calls struct {
		List []struct {
			UserID uuid.UUID
			Filter domain.TradeFilter
		}
	}
	lockList sync.RWMutex
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

var _ insightsGenerator = &insightsGeneratorMock{}

type insightsGeneratorMock struct {
	GenerateInsightsFunc func(ctx context.Context, trades []*domain.Trade) (domain.Insights, error)

	calls struct {
		GenerateInsights []struct {
			Trades []*domain.Trade
		}
	}
	lockGenerateInsights sync.RWMutex
}

func (mock *insightsGeneratorMock) GenerateInsights(ctx context.Context, trades []*domain.Trade) (domain.Insights, error) {
	if mock.GenerateInsightsFunc == nil {
		panic("insightsGeneratorMock.GenerateInsightsFunc: method is nil but insightsGenerator.GenerateInsights was just called")
	}
	mock.lockGenerateInsights.Lock()
	mock.calls.GenerateInsights = append(mock.calls.GenerateInsights, struct{ Trades []*domain.Trade }{Trades: trades})
	mock.lockGenerateInsights.Unlock()
	return mock.GenerateInsightsFunc(ctx, trades)
}

func (mock *insightsGeneratorMock) GenerateInsightsCalls() []struct{ Trades []*domain.Trade } {
	mock.lockGenerateInsights.RLock()
	calls := mock.calls.GenerateInsights
	mock.lockGenerateInsights.RUnlock()
	return calls
}
