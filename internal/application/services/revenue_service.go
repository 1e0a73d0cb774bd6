package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/KretovDmitry/canang-orders/internal/application/interfaces"
	"github.com/KretovDmitry/canang-orders/internal/domain/repositories"
	"github.com/shopspring/decimal"
)

type RevenueService struct {
	repo repositories.OrderRepository
}

func NewRevenueService(repo repositories.OrderRepository) (*RevenueService, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: order repository")
	}
	return &RevenueService{repo: repo}, nil
}

var _ interfaces.RevenueService = (*RevenueService)(nil)

// TotalRevenue is recomputed by the store on every call, nothing is cached.
func (s *RevenueService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}

	return total, nil
}
