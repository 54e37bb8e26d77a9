package configs

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Keeper configures the settlement job that finalizes expired campaigns.
// Address is the caller identity its finalize calls are made as.
type Keeper struct {
	Enabled   bool           `env:"ENABLED" envDefault:"false"`
	Interval  time.Duration  `env:"INTERVAL" envDefault:"30s"`
	Workers   int            `env:"WORKERS" envDefault:"4"`
	BatchSize int            `env:"BATCH_SIZE" envDefault:"100"`
	Address   common.Address `env:"ADDRESS" envDefault:"0x00000000000000000000000000000000000c0de2"`
}

// Otel configures trace export. Tracing is disabled when Endpoint is empty.
type Otel struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"crowdfund-ledger"`
}
