package rest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/application/params"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/shopspring/decimal"
)

var errStore = errors.New("connection refused")

var testTime = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

// Lock in case of t.Parallel call.
type mockOrderService struct {
	items []entities.Order
	mu    sync.RWMutex
	fail  bool
}

func (m *mockOrderService) CreateOrder(_ context.Context, p *params.CreateOrder) (*entities.Order, error) {
	if m.fail {
		return nil, errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order := entities.NewOrder(p.CustomerName, p.ItemType, p.Quantity, p.UnitPrice)
	order.ID = int64(len(m.items) + 1)
	order.CreatedAt = testTime
	m.items = append(m.items, *order)
	return order, nil
}

func (m *mockOrderService) UpdateOrder(_ context.Context, p *params.UpdateOrder) (*entities.Order, error) {
	if m.fail {
		return nil, errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == p.ID {
			m.items[i].CustomerName = p.CustomerName
			m.items[i].ItemType = p.ItemType
			m.items[i].Quantity = p.Quantity
			m.items[i].UnitPrice = p.UnitPrice
			order := m.items[i]
			return &order, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockOrderService) MarkDone(_ context.Context, id int64) (*entities.Order, error) {
	if m.fail {
		return nil, errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id {
			m.items[i].Status = entities.DONE
			order := m.items[i]
			return &order, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockOrderService) GetOrder(_ context.Context, id int64) (*entities.Order, error) {
	if m.fail {
		return nil, errStore
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockOrderService) GetOrders(_ context.Context) ([]*entities.Order, error) {
	if m.fail {
		return nil, errStore
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]*entities.Order, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		item := m.items[i]
		orders = append(orders, &item)
	}
	return orders, nil
}

// mockRevenueService sums done orders of the order service.
type mockRevenueService struct {
	orders *mockOrderService
	fail   bool
}

func (m *mockRevenueService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	if m.fail {
		return decimal.Zero, fmt.Errorf("total revenue: %w", errStore)
	}
	orders, err := m.orders.GetOrders(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return entities.TotalRevenue(orders), nil
}

type mockArchiveService struct {
	items []entities.Archive
	mu    sync.RWMutex
	// resetErr is returned by ArchiveAndReset when set.
	resetErr error
	// orders are moved into the archive on reset.
	orders *mockOrderService
}

func (m *mockArchiveService) ArchiveAndReset(_ context.Context) (*entities.Archive, error) {
	if m.resetErr != nil {
		return nil, m.resetErr
	}
	m.orders.mu.Lock()
	done := make([]*entities.Order, 0)
	kept := make([]entities.Order, 0)
	for _, item := range m.orders.items {
		if item.IsDone() {
			done = append(done, &item)
		} else {
			kept = append(kept, item)
		}
	}
	m.orders.items = kept
	m.orders.mu.Unlock()

	if len(done) == 0 {
		return nil, errs.ErrNothingToArchive
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	archive := entities.NewArchive(done)
	archive.ID = int64(len(m.items) + 1)
	archive.ArchivedAt = testTime
	m.items = append(m.items, *archive)
	return archive, nil
}

func (m *mockArchiveService) GetArchive(_ context.Context, id int64) (*entities.Archive, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockArchiveService) GetArchives(_ context.Context) ([]*entities.Archive, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	archives := make([]*entities.Archive, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		item := m.items[i]
		archives = append(archives, &item)
	}
	return archives, nil
}

func (m *mockArchiveService) DeleteArchive(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(context.Context) error {
	return m.err
}
