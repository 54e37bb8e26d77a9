package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowdfund-ledger/db/migrations"
)

// Migrate applies all up migrations for the given driver ("postgres" or
// "sqlite") to the database at addr. A sqlite addr is a file path.
func Migrate(driver, addr string) error {
	switch driver {
	case "postgres":
	case "sqlite":
		addr = "sqlite://" + addr
	default:
		return fmt.Errorf("migrations: unsupported driver %q", driver)
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
