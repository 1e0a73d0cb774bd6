package interfaces

import (
	"context"

	"github.com/KretovDmitry/canang-orders/internal/application/params"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
)

// OrderService represents all service actions.
type OrderService interface {
	CreateOrder(context.Context, *params.CreateOrder) (*entities.Order, error)
	UpdateOrder(context.Context, *params.UpdateOrder) (*entities.Order, error)
	MarkDone(context.Context, int64) (*entities.Order, error)
	GetOrder(context.Context, int64) (*entities.Order, error)
	GetOrders(context.Context) ([]*entities.Order, error)
}
