package repository

import (
	"context"
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository/migrations"
)

// openMigrationDB opens the pool a migrator owns. Closing the migrator
// closes it as well, so it is never the app's pool.
var openMigrationDB = OpenPostgres

// withMigrator runs fn against a migrator on its own connection and
// releases that connection afterwards.
func withMigrator(ctx context.Context, cfg config.PostgreSQL, fn func(m *migrate.Migrate) error) error {
	db, err := openMigrationDB(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "open migrations db")
	}

	m, err := newMigrator(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	return fn(m)
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "open migrations source")
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		_ = src.Close()
		return nil, errors.Wrap(err, "init migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return nil, errors.Wrap(err, "init migrate")
	}
	return m, nil
}

// Migrate brings the schema up to date. No pending migrations is not an error.
func Migrate(ctx context.Context, cfg config.PostgreSQL) error {
	return withMigrator(ctx, cfg, func(m *migrate.Migrate) error {
		err := m.Up()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "apply migrations")
		}
		return nil
	})
}

// Rollback reverts the given number of migrations.
func Rollback(ctx context.Context, cfg config.PostgreSQL, steps int) error {
	if steps <= 0 {
		return errors.New("rollback steps must be positive")
	}

	return withMigrator(ctx, cfg, func(m *migrate.Migrate) error {
		err := m.Steps(-steps)
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "revert migrations")
		}
		return nil
	})
}

// MigrationVersion reports the applied schema version, 0 when none.
func MigrationVersion(ctx context.Context, cfg config.PostgreSQL) (version uint, dirty bool, err error) {
	err = withMigrator(ctx, cfg, func(m *migrate.Migrate) error {
		var verErr error
		version, dirty, verErr = m.Version()
		if errors.Is(verErr, migrate.ErrNilVersion) {
			return nil
		}
		return errors.Wrap(verErr, "read schema version")
	})
	if err != nil {
		return 0, false, err
	}
	return version, dirty, nil
}
