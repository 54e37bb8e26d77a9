package configs

import (
	"fmt"
	"strings"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Storage selects the ledger repository. Seed creates a few demo campaigns
// on startup when the ledger is empty.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	Seed   bool   `env:"SEED" envDefault:"false"`
}

// NormalizedDriver returns the lower-cased driver or an error for unknown
// values.
func (c Storage) NormalizedDriver() (string, error) {
	d := strings.ToLower(strings.TrimSpace(c.Driver))
	switch d {
	case StorageMemory, StoragePostgres, StorageSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}

// SQLite configures the SQLite driver.
type SQLite struct {
	Path          string `env:"PATH" envDefault:"crowdfund.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}
