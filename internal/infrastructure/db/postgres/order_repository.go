package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/KretovDmitry/canang-orders/internal/domain/repositories"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const orderColumns = "id, customer_name, item_type, quantity, unit_price, status, created_at"

type OrderRepository struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	logger logger.Logger
}

func NewOrderRepository(db *sql.DB, getter *trmsql.CtxGetter, logger logger.Logger) (*OrderRepository, error) {
	if db == nil {
		return nil, errors.New("nil dependency: database")
	}
	if getter == nil {
		return nil, errors.New("nil dependency: transaction getter")
	}

	return &OrderRepository{db: db, getter: getter, logger: logger}, nil
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	const query = `
		INSERT INTO orders (customer_name, item_type, quantity, unit_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query,
			order.CustomerName,
			order.ItemType,
			order.Quantity,
			order.UnitPrice,
			order.Status,
		).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return classify(err)
	}

	return nil
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	const query = `
		UPDATE orders SET
			customer_name = $1,
			item_type = $2,
			quantity = $3,
			unit_price = $4
		WHERE id = $5
		RETURNING status, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query,
			order.CustomerName,
			order.ItemType,
			order.Quantity,
			order.UnitPrice,
			order.ID,
		).
		Scan(&order.Status, &order.CreatedAt)
	if err != nil {
		return classify(err)
	}

	return nil
}

func (r *OrderRepository) MarkDone(ctx context.Context, id int64) (*entities.Order, error) {
	const query = "UPDATE orders SET status = $1 WHERE id = $2 RETURNING " + orderColumns

	row := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, entities.DONE, id)

	order, err := scanOrder(row)
	if err != nil {
		return nil, classify(err)
	}

	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*entities.Order, error) {
	const query = "SELECT " + orderColumns + " FROM orders WHERE id = $1"

	row := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, id)

	order, err := scanOrder(row)
	if err != nil {
		return nil, classify(err)
	}

	return order, nil
}

func (r *OrderRepository) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	const query = "SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC, id DESC"

	return r.queryOrders(ctx, query)
}

func (r *OrderRepository) GetDoneOrders(ctx context.Context) ([]*entities.Order, error) {
	const query = "SELECT " + orderColumns + " FROM orders WHERE status = $1 ORDER BY created_at, id"

	return r.queryOrders(ctx, query, entities.DONE)
}

func (r *OrderRepository) DeleteOrders(ctx context.Context, ids []int64) (int64, error) {
	const query = "DELETE FROM orders WHERE id = ANY($1::bigint[])"

	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, classify(err)
	}

	return res.RowsAffected()
}

func (r *OrderRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	const query = "SELECT COALESCE(SUM(quantity * unit_price), 0) FROM orders WHERE status = $1"

	var total decimal.Decimal

	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, entities.DONE).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entities.Order, error) {
	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err = rows.Close(); err != nil {
			r.logger.Errorf("close rows: %s", err)
		}
	}()

	orders := make([]*entities.Order, 0)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	// Rows.Err will report the last error encountered by Rows.Scan.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*entities.Order, error) {
	order := new(entities.Order)

	err := s.Scan(
		&order.ID,
		&order.CustomerName,
		&order.ItemType,
		&order.Quantity,
		&order.UnitPrice,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}
