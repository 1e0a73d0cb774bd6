package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate brings the schema to the latest version found at source,
// e.g. "file://migrations". It uses its own connection and closes it.
func Migrate(dsn, source string, logger logger.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migrations connection: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("init migrations driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "pgx5", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("init migrations: %w", err)
	}
	// Closes db as well.
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Errorf("close migrations: %v", errors.Join(srcErr, dbErr))
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("migrations version: %w", err)
	}
	logger.Infof("migrations applied, schema version %d", version)

	return nil
}
