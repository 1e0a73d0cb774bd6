package services

import (
	"context"
	"errors"

	"github.com/KretovDmitry/canang-orders/internal/application/interfaces"
	"github.com/KretovDmitry/canang-orders/internal/application/params"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/KretovDmitry/canang-orders/internal/domain/repositories"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
)

type OrderService struct {
	repo   repositories.OrderRepository
	logger logger.Logger
}

func NewOrderService(repo repositories.OrderRepository, logger logger.Logger) (*OrderService, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: order repository")
	}
	return &OrderService{
		repo:   repo,
		logger: logger,
	}, nil
}

var _ interfaces.OrderService = (*OrderService)(nil)

// Create new pending order.
func (s *OrderService) CreateOrder(ctx context.Context, params *params.CreateOrder) (*entities.Order, error) {
	order := entities.NewOrder(params.CustomerName, params.ItemType, params.Quantity, params.UnitPrice)

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.With(ctx, "order_id", order.ID).Infof("order created for %q", order.CustomerName)

	return order, nil
}

// Overwrite editable fields of the order, status is left as is.
func (s *OrderService) UpdateOrder(ctx context.Context, params *params.UpdateOrder) (*entities.Order, error) {
	order := &entities.Order{
		ID:           params.ID,
		CustomerName: params.CustomerName,
		ItemType:     params.ItemType,
		Quantity:     params.Quantity,
		UnitPrice:    params.UnitPrice,
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Mark the order as done. It starts counting towards the revenue.
func (s *OrderService) MarkDone(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.repo.MarkDone(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.With(ctx, "order_id", id).Info("order done")

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// Get active orders, newest first.
func (s *OrderService) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	orders, err := s.repo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	return orders, nil
}
