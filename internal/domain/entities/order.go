package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	PENDING OrderStatus = "pending"
	DONE    OrderStatus = "done"
)

// Order is an order of the active set. Fields aligned for the GC optimal scanning.
type Order struct {
	CreatedAt    time.Time
	UnitPrice    decimal.Decimal
	CustomerName string
	ItemType     string
	Status       OrderStatus
	ID           int64
	Quantity     int
}

func NewOrder(customerName, itemType string, quantity int, unitPrice decimal.Decimal) *Order {
	return &Order{
		CustomerName: customerName,
		ItemType:     itemType,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Status:       PENDING,
	}
}

func (o *Order) IsDone() bool {
	return o.Status == DONE
}

// Subtotal is quantity times unit price, whatever the status is.
func (o *Order) Subtotal() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Revenue is the contribution of the order to the revenue.
// Only done orders contribute.
func (o *Order) Revenue() decimal.Decimal {
	if !o.IsDone() {
		return decimal.Zero
	}
	return o.Subtotal()
}

// TotalRevenue sums the revenue of the given orders.
func TotalRevenue(orders []*Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Revenue())
	}
	return total
}
