// Package transfer implements the outbound value transfer drivers.
package transfer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Payment is one payout recorded by a Book.
type Payment struct {
	Reference string
	To        common.Address
	Amount    domain.Amount
	At        time.Time
}

// Book is an in-process transfer driver. It records payouts instead of
// moving value anywhere, which is what local runs and tests need.
type Book struct {
	mu       sync.Mutex
	payments []Payment
	paid     map[common.Address]domain.Amount
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{paid: make(map[common.Address]domain.Amount)}
}

var (
	_ port.Transferer      = (*Book)(nil)
	_ port.DepositVerifier = (*Book)(nil)
)

// VerifyDeposit accepts every deposit. A book moves no external value, so
// there is nothing to check the claimed amount against.
func (b *Book) VerifyDeposit(ctx context.Context, _ common.Address, _ domain.Amount, _ string) error {
	return ctx.Err()
}

// Transfer records a payout of amount to `to`.
func (b *Book) Transfer(ctx context.Context, to common.Address, amount domain.Amount) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == (common.Address{}) {
		return errors.New("transfer to zero address")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	total, err := domain.AddAmounts(b.paid[to], amount)
	if err != nil {
		return err
	}
	b.paid[to] = total
	b.payments = append(b.payments, Payment{
		Reference: uuid.NewString(),
		To:        to,
		Amount:    amount,
		At:        time.Now().UTC(),
	})
	return nil
}

// Paid returns the total paid to who.
func (b *Book) Paid(who common.Address) domain.Amount {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paid[who]
}

// Payments returns a copy of all recorded payouts in order.
func (b *Book) Payments() []Payment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Payment, len(b.payments))
	copy(out, b.payments)
	return out
}
