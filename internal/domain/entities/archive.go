package entities

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Archive is a closed book: done orders of one work period frozen together
// with their total. Never mutated after creation.
type Archive struct {
	ArchivedAt   time.Time
	TotalRevenue decimal.Decimal
	Orders       Snapshot
	ID           int64
}

// NewArchive snapshots the given orders. ID and ArchivedAt are assigned
// by the store.
func NewArchive(orders []*Order) *Archive {
	snapshot := NewSnapshot(orders)
	return &Archive{
		TotalRevenue: snapshot.Total(),
		Orders:       snapshot,
	}
}

// SnapshotOrder is a point-in-time copy of an order. It has its own JSON
// representation so stored archives stay readable when Order changes.
type SnapshotOrder struct {
	CreatedAt    time.Time       `json:"created_at"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CustomerName string          `json:"customer_name"`
	ItemType     string          `json:"item_type"`
	Status       OrderStatus     `json:"status"`
	ID           int64           `json:"id"`
	Quantity     int             `json:"quantity"`
}

func (o SnapshotOrder) Subtotal() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Snapshot is the ordered list of orders embedded into an archive.
// Stored as JSON, see Value and Scan.
type Snapshot []SnapshotOrder

var (
	_ driver.Valuer = Snapshot(nil)
	_ sql.Scanner   = (*Snapshot)(nil)
)

func NewSnapshot(orders []*Order) Snapshot {
	s := make(Snapshot, len(orders))
	for i, o := range orders {
		s[i] = SnapshotOrder{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			ItemType:     o.ItemType,
			Quantity:     o.Quantity,
			UnitPrice:    o.UnitPrice,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		}
	}
	return s
}

// Total sums the subtotals of every snapshotted order.
func (s Snapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s {
		total = total.Add(o.Subtotal())
	}
	return total
}

// OrderIDs returns identifiers of the snapshotted orders in snapshot order.
func (s Snapshot) OrderIDs() []int64 {
	ids := make([]int64, len(s))
	for i, o := range s {
		ids[i] = o.ID
	}
	return ids
}

// Value implements driver.Valuer.
func (s Snapshot) Value() (driver.Value, error) {
	if s == nil {
		s = Snapshot{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Snapshot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Snapshot{}
		return nil
	case []byte:
		return s.decode(v)
	case string:
		return s.decode([]byte(v))
	default:
		return fmt.Errorf("scan snapshot: unsupported type %T", src)
	}
}

// decode accepts the plain JSON array and also the array serialized into
// a JSON string, which is how older rows were written.
func (s *Snapshot) decode(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode serialized snapshot: %w", err)
		}
		data = []byte(text)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if decoded == nil {
		decoded = Snapshot{}
	}

	*s = decoded
	return nil
}
