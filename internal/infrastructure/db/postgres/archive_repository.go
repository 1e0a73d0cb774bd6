package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/domain/entities"
	"github.com/KretovDmitry/canang-orders/internal/domain/repositories"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
)

type ArchiveRepository struct {
	db      *sql.DB
	getter  *trmsql.CtxGetter
	logger  logger.Logger
	lockKey int64
}

func NewArchiveRepository(
	db *sql.DB, getter *trmsql.CtxGetter, lockKey int64, logger logger.Logger,
) (*ArchiveRepository, error) {
	if db == nil {
		return nil, errors.New("nil dependency: database")
	}
	if getter == nil {
		return nil, errors.New("nil dependency: transaction getter")
	}

	return &ArchiveRepository{db: db, getter: getter, logger: logger, lockKey: lockKey}, nil
}

var _ repositories.ArchiveRepository = (*ArchiveRepository)(nil)

// LockArchiving takes a transaction level advisory lock,
// outside of a transaction it would be released immediately.
func (r *ArchiveRepository) LockArchiving(ctx context.Context) error {
	const query = "SELECT pg_advisory_xact_lock($1)"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, r.lockKey)

	return err
}

func (r *ArchiveRepository) CreateArchive(ctx context.Context, archive *entities.Archive) error {
	const query = `
		INSERT INTO archives (total_revenue, orders_snapshot)
		VALUES ($1, $2::jsonb)
		RETURNING id, archived_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, archive.TotalRevenue, archive.Orders).
		Scan(&archive.ID, &archive.ArchivedAt)
	if err != nil {
		return classify(err)
	}

	return nil
}

func (r *ArchiveRepository) GetArchiveByID(ctx context.Context, id int64) (*entities.Archive, error) {
	const query = `
		SELECT id, total_revenue, orders_snapshot, archived_at
		FROM archives WHERE id = $1
	`

	row := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, id)

	archive, err := scanArchive(row)
	if err != nil {
		return nil, classify(err)
	}

	return archive, nil
}

func (r *ArchiveRepository) GetArchives(ctx context.Context) ([]*entities.Archive, error) {
	const query = `
		SELECT id, total_revenue, orders_snapshot, archived_at
		FROM archives ORDER BY archived_at DESC, id DESC
	`

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err = rows.Close(); err != nil {
			r.logger.Errorf("close rows: %s", err)
		}
	}()

	archives := make([]*entities.Archive, 0)

	for rows.Next() {
		archive, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}

		archives = append(archives, archive)
	}

	// Rows.Err will report the last error encountered by Rows.Scan.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return archives, nil
}

func (r *ArchiveRepository) DeleteArchive(ctx context.Context, id int64) error {
	const query = "DELETE FROM archives WHERE id = $1"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func scanArchive(s scanner) (*entities.Archive, error) {
	archive := new(entities.Archive)

	// The snapshot is decoded by entities.Snapshot.Scan.
	err := s.Scan(
		&archive.ID,
		&archive.TotalRevenue,
		&archive.Orders,
		&archive.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}

	return archive, nil
}
