package configs

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger holds the identity the ledger acts as. It is the only identity the
// reward issuer accepts mint calls from and, with the ethereum transfer
// driver, the account custody is paid out from.
type Ledger struct {
	Address common.Address `env:"ADDRESS" envDefault:"0x00000000000000000000000000000000000c0de1"`
}

// Reward is the display descriptor of the reward credit.
type Reward struct {
	Decimals uint8  `env:"DECIMALS" envDefault:"18"`
	Symbol   string `env:"SYMBOL" envDefault:"CRWD"`
}

// Transfer drivers.
const (
	TransferBook     = "book"
	TransferEthereum = "ethereum"
)

// Transfer selects how custody is paid out.
type Transfer struct {
	Driver string `env:"DRIVER" envDefault:"book"`
}

// Ethereum configures native value payouts through a JSON-RPC node.
type Ethereum struct {
	RPCURL     string        `env:"RPC_URL" envDefault:"http://localhost:8545"`
	PrivateKey string        `env:"PRIVATE_KEY"`
	ChainID    int64         `env:"CHAIN_ID" envDefault:"1337"`
	GasLimit   uint64        `env:"GAS_LIMIT" envDefault:"21000"`
	WaitMined  bool          `env:"WAIT_MINED" envDefault:"true"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
