package params

import (
	"strings"
	"testing"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrder(t *testing.T) {
	type args struct {
		customerName, itemType, quantity, unitPrice string
	}

	tests := []struct {
		name    string
		args    args
		want    OrderFields
		wantErr string
	}{
		{
			name: "OK",
			args: args{" Made ", "canang sari", "2", "10000"},
			want: OrderFields{
				CustomerName: "Made",
				ItemType:     "canang sari",
				Quantity:     2,
				UnitPrice:    decimal.NewFromInt(10000),
			},
		},
		{
			name: "zero quantity and price",
			args: args{"Made", "canang sari", "0", "0"},
			want: OrderFields{
				CustomerName: "Made",
				ItemType:     "canang sari",
				Quantity:     0,
				UnitPrice:    decimal.Zero,
			},
		},
		{
			name: "fractional price",
			args: args{"Made", "banten", "1", "2500.50"},
			want: OrderFields{
				CustomerName: "Made",
				ItemType:     "banten",
				Quantity:     1,
				UnitPrice:    decimal.RequireFromString("2500.50"),
			},
		},
		{
			name:    "empty customer name",
			args:    args{"  ", "canang sari", "2", "10000"},
			wantErr: "invalid request: customer_name is required",
		},
		{
			name:    "empty item type",
			args:    args{"Made", "", "2", "10000"},
			wantErr: "invalid request: item_type is required",
		},
		{
			name:    "too long customer name",
			args:    args{strings.Repeat("a", 101), "canang sari", "2", "10000"},
			wantErr: "invalid request: customer_name must not exceed 100 characters",
		},
		{
			name:    "quantity is not a number",
			args:    args{"Made", "canang sari", "dua", "10000"},
			wantErr: "invalid request: quantity must be an integer",
		},
		{
			name:    "fractional quantity",
			args:    args{"Made", "canang sari", "1.5", "10000"},
			wantErr: "invalid request: quantity must be an integer",
		},
		{
			name:    "negative quantity",
			args:    args{"Made", "canang sari", "-1", "10000"},
			wantErr: "invalid request: quantity must not be negative",
		},
		{
			name:    "price is not a number",
			args:    args{"Made", "canang sari", "1", "sepuluh ribu"},
			wantErr: "invalid request: unit_price must be a number",
		},
		{
			name:    "negative price",
			args:    args{"Made", "canang sari", "1", "-5"},
			wantErr: "invalid request: unit_price must not be negative",
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewCreateOrder(tt.args.customerName, tt.args.itemType, tt.args.quantity, tt.args.unitPrice)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.CustomerName, got.CustomerName)
			assert.Equal(t, tt.want.ItemType, got.ItemType)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
			assert.True(t, tt.want.UnitPrice.Equal(got.UnitPrice), "unit price mismatch")
		})
	}
}

func TestNewUpdateOrder(t *testing.T) {
	got, err := NewUpdateOrder(5, "Ketut", "canang sari", "4", "1500")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "Ketut", got.CustomerName)

	_, err = NewUpdateOrder(5, "Ketut", "", "4", "1500")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err = ParseID(raw)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest, raw)
	}
}
