package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-ledger/internal/core/domain"
)

// Transferer moves custodied value out of the ledger. It is the only point
// where the ledger hands control to code it does not own, so it is always
// invoked after the ledger state has reached its final value.
type Transferer interface {
	Transfer(ctx context.Context, to common.Address, amount domain.Amount) error
}

// DepositVerifier confirms that the value a contribution claims was
// actually received into custody. ref identifies the inbound payment, e.g. a
// transaction hash; drivers that hold no external value may accept an empty
// ref.
type DepositVerifier interface {
	VerifyDeposit(ctx context.Context, from common.Address, amount domain.Amount, ref string) error
}

// EventPublisher delivers outbox events to external observers.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
	Close() error
}
