package request

import (
	"fmt"
	"net/http"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/header"
)

// OrderForm defines raw form fields for CreateOrder and UpdateOrder.
type OrderForm struct {
	CustomerName string `form:"customer_name"`
	ItemType     string `form:"item_type"`
	Quantity     string `form:"quantity"`
	UnitPrice    string `form:"unit_price"`
}

// NewOrderForm reads an url-encoded order form from the request body.
func NewOrderForm(r *http.Request) (*OrderForm, error) {
	if !header.IsFormContentType(r) {
		return nil, fmt.Errorf("%w: invalid content type %q",
			errs.ErrInvalidRequest, r.Header.Get("Content-Type"))
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err)
	}

	return &OrderForm{
		CustomerName: r.PostForm.Get("customer_name"),
		ItemType:     r.PostForm.Get("item_type"),
		Quantity:     r.PostForm.Get("quantity"),
		UnitPrice:    r.PostForm.Get("unit_price"),
	}, nil
}
