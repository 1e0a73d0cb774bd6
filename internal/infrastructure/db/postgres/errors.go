package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify maps store errors onto application sentinel errors.
// Anything unknown is returned unchanged and ends up as a store failure.
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation,
			pgerrcode.NumericValueOutOfRange, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, pgErr.Message)
		}
	}

	return err
}
