package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/shopspring/decimal"
)

var errStore = errors.New("don't panic!")

// Lock in case of t.Parallel call.
type mockOrderRepository struct {
	items []entities.Order
	mu    sync.RWMutex

	// failOn names the method that returns errStore.
	failOn string
	// deleteLimit caps how many orders DeleteOrders removes, 0 is no cap.
	deleteLimit int
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	if order.CustomerName == "panic" {
		return errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID int64
	for _, item := range m.items {
		maxID = max(maxID, item.ID)
	}
	order.ID = maxID + 1
	order.CreatedAt = time.Now()
	m.items = append(m.items, *order)
	return nil
}

func (m *mockOrderRepository) UpdateOrder(_ context.Context, order *entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == order.ID {
			order.Status = item.Status
			order.CreatedAt = item.CreatedAt
			m.items[i] = *order
			return nil
		}
	}
	return errs.ErrNotFound
}

func (m *mockOrderRepository) MarkDone(_ context.Context, id int64) (*entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = entities.DONE
			order := m.items[i]
			return &order, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockOrderRepository) GetOrderByID(_ context.Context, id int64) (*entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockOrderRepository) GetOrders(_ context.Context) ([]*entities.Order, error) {
	if m.failOn == "GetOrders" {
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

func (m *mockOrderRepository) GetDoneOrders(_ context.Context) ([]*entities.Order, error) {
	if m.failOn == "GetDoneOrders" {
		return nil, errStore
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]*entities.Order, 0)
	for _, item := range m.items {
		if item.IsDone() {
			orders = append(orders, &item)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) DeleteOrders(_ context.Context, ids []int64) (int64, error) {
	if m.failOn == "DeleteOrders" {
		return 0, errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	kept := m.items[:0]
	for _, item := range m.items {
		if slices.Contains(ids, item.ID) && (m.deleteLimit == 0 || deleted < int64(m.deleteLimit)) {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return deleted, nil
}

func (m *mockOrderRepository) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	if m.failOn == "TotalRevenue" {
		return decimal.Zero, errStore
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(item.Revenue())
	}
	return total, nil
}

type mockArchiveRepository struct {
	items []entities.Archive
	mu    sync.RWMutex

	failOn string
	locks  int
}

func (m *mockArchiveRepository) LockArchiving(_ context.Context) error {
	if m.failOn == "LockArchiving" {
		return errStore
	}
	m.mu.Lock()
	m.locks++
	m.mu.Unlock()
	return nil
}

func (m *mockArchiveRepository) CreateArchive(_ context.Context, archive *entities.Archive) error {
	if m.failOn == "CreateArchive" {
		return errStore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	archive.ID = int64(len(m.items) + 1)
	archive.ArchivedAt = time.Now()
	m.items = append(m.items, *archive)
	return nil
}

func (m *mockArchiveRepository) GetArchiveByID(_ context.Context, id int64) (*entities.Archive, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockArchiveRepository) GetArchives(_ context.Context) ([]*entities.Archive, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	archives := make([]*entities.Archive, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		item := m.items[i]
		archives = append(archives, &item)
	}
	return archives, nil
}

func (m *mockArchiveRepository) DeleteArchive(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return errs.ErrNotFound
}

// scenarioOrders are three done orders worth 31000 in total.
func scenarioOrders() []entities.Order {
	at := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	return []entities.Order{
		{ID: 1, CustomerName: "A", ItemType: "canang sari", Quantity: 2, UnitPrice: decimal.NewFromInt(10000), Status: entities.DONE, CreatedAt: at},
		{ID: 2, CustomerName: "B", ItemType: "canang sari", Quantity: 1, UnitPrice: decimal.NewFromInt(5000), Status: entities.DONE, CreatedAt: at.Add(time.Minute)},
		{ID: 3, CustomerName: "C", ItemType: "banten", Quantity: 3, UnitPrice: decimal.NewFromInt(2000), Status: entities.DONE, CreatedAt: at.Add(2 * time.Minute)},
	}
}
