package params

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Validate decimals as numbers.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	// Report form field names instead of struct field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})

	return v
}

// OrderFields are the editable fields of an order.
type OrderFields struct {
	UnitPrice    decimal.Decimal `form:"unit_price" validate:"gte=0"`
	CustomerName string          `form:"customer_name" validate:"required,max=100"`
	ItemType     string          `form:"item_type" validate:"required,max=100"`
	Quantity     int             `form:"quantity" validate:"gte=0"`
}

// CreateOrder defines parameters for CreateOrder.
type CreateOrder struct {
	OrderFields
}

// UpdateOrder defines parameters for UpdateOrder.
type UpdateOrder struct {
	OrderFields
	ID int64
}

// NewCreateOrder parses and validates raw form values.
func NewCreateOrder(customerName, itemType, quantity, unitPrice string) (*CreateOrder, error) {
	fields, err := newOrderFields(customerName, itemType, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	return &CreateOrder{OrderFields: *fields}, nil
}

// NewUpdateOrder parses and validates raw form values of an edit.
func NewUpdateOrder(id int64, customerName, itemType, quantity, unitPrice string) (*UpdateOrder, error) {
	fields, err := newOrderFields(customerName, itemType, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	return &UpdateOrder{OrderFields: *fields, ID: id}, nil
}

// ParseID parses a positive record identifier taken from the URL.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errs.ErrInvalidRequest, raw)
	}
	return id, nil
}

func newOrderFields(customerName, itemType, quantity, unitPrice string) (*OrderFields, error) {
	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return nil, fmt.Errorf("%w: quantity must be an integer", errs.ErrInvalidRequest)
	}

	p, err := decimal.NewFromString(strings.TrimSpace(unitPrice))
	if err != nil {
		return nil, fmt.Errorf("%w: unit_price must be a number", errs.ErrInvalidRequest)
	}

	fields := &OrderFields{
		CustomerName: strings.TrimSpace(customerName),
		ItemType:     strings.TrimSpace(itemType),
		Quantity:     q,
		UnitPrice:    p,
	}

	if err = validate.Struct(fields); err != nil {
		return nil, checkValidationError(err)
	}

	return fields, nil
}

func checkValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err)
	}

	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", errs.ErrInvalidRequest, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s must not exceed %s characters", errs.ErrInvalidRequest, fe.Field(), fe.Param())
	case "gte":
		return fmt.Errorf("%w: %s must not be negative", errs.ErrInvalidRequest, fe.Field())
	}

	return fmt.Errorf("%w: %s is invalid", errs.ErrInvalidRequest, fe.Field())
}
