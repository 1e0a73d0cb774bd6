package repositories

import (
	"context"

	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrder(context.Context, *entities.Order) error
	UpdateOrder(context.Context, *entities.Order) error
	MarkDone(context.Context, int64) (*entities.Order, error)
	GetOrderByID(context.Context, int64) (*entities.Order, error)
	GetOrders(context.Context) ([]*entities.Order, error)
	// Done orders in creation order.
	GetDoneOrders(context.Context) ([]*entities.Order, error)
	// Deletes orders by identifier and reports how many rows went away.
	DeleteOrders(context.Context, []int64) (int64, error)
	// Sum of quantity * unit_price over done orders, zero if there are none.
	TotalRevenue(context.Context) (decimal.Decimal, error)
}
