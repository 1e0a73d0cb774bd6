package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// RevenueService computes revenue of the active set on demand.
type RevenueService interface {
	TotalRevenue(context.Context) (decimal.Decimal, error)
}
