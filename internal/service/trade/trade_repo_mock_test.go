package trade

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
)

var _ tradeRepo = &tradeRepoMock{}

type tradeRepoMock struct {
	CreateFunc  func(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	GetByIDFunc func(ctx context.Context, userID, tradeID uuid.UUID) (*domain.Trade, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error)
	UpdateFunc  func(ctx context.Context, t *domain.Trade) (*domain.Trade, error)
	DeleteFunc  func(ctx context.Context, userID, tradeID uuid.UUID) error

	calls struct {
		Create []struct {
			Trade *domain.Trade
		}
		GetByID []struct {
			UserID  uuid.UUID
			TradeID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.TradeFilter
		}
		Update []struct {
			Trade *domain.Trade
		}
		Delete []struct {
			UserID  uuid.UUID
			TradeID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *tradeRepoMock) GetByID(ctx context.Context, userID, tradeID uuid.UUID) (*domain.Trade, error) {
	if mock.GetByIDFunc == nil {
		panic("tradeRepoMock.GetByIDFunc: method is nil but tradeRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		TradeID uuid.UUID
	}{UserID: userID, TradeID: tradeID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, tradeID)
}

func (mock *tradeRepoMock) GetByIDCalls() []struct {
	UserID  uuid.UUID
	TradeID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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

func (mock *tradeRepoMock) Update(ctx context.Context, t *domain.Trade) (*domain.Trade, error) {
	if mock.UpdateFunc == nil {
		panic("tradeRepoMock.UpdateFunc: method is nil but tradeRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Trade *domain.Trade }{Trade: t})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *tradeRepoMock) UpdateCalls() []struct{ Trade *domain.Trade } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *tradeRepoMock) Delete(ctx context.Context, userID, tradeID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tradeRepoMock.DeleteFunc: method is nil but tradeRepo.Delete was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		TradeID uuid.UUID
	}{UserID: userID, TradeID: tradeID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, tradeID)
}

func (mock *tradeRepoMock) DeleteCalls() []struct {
	UserID  uuid.UUID
	TradeID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
