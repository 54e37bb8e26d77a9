package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// RewardUnit is the display descriptor of the reward credit. It never takes
// part in balance arithmetic.
type RewardUnit struct {
	Decimals uint8
	Symbol   string
}

// RewardIssuer keeps reward credit balances. Its only way to increase a
// balance is Mint, which accepts exactly one caller: the controller bound at
// construction.
type RewardIssuer struct {
	balances   port.LedgerReader
	controller common.Address
	unit       RewardUnit
}

// NewRewardIssuer creates an issuer reading committed balances from
// balances and minting only on behalf of controller.
func NewRewardIssuer(balances port.LedgerReader, controller common.Address, unit RewardUnit) *RewardIssuer {
	return &RewardIssuer{balances: balances, controller: controller, unit: unit}
}

// Unit returns the display descriptor.
func (r *RewardIssuer) Unit() RewardUnit {
	return r.unit
}

// Mint credits amount to `to` inside the caller's transaction and returns
// the new balance. A zero amount or a balance overflow is ErrInvalidAmount.
func (r *RewardIssuer) Mint(ctx context.Context, tx port.RewardBalances, caller, to common.Address, amount domain.Amount) (domain.Amount, error) {
	if caller != r.controller {
		return domain.Amount{}, fmt.Errorf("%w: %s may not mint", domain.ErrUnauthorized, caller.Hex())
	}
	if amount.IsZero() {
		return domain.Amount{}, fmt.Errorf("%w: zero mint", domain.ErrInvalidAmount)
	}
	current, err := tx.RewardBalance(ctx, to)
	if err != nil {
		return domain.Amount{}, err
	}
	next, err := domain.AddAmounts(current, amount)
	if err != nil {
		return domain.Amount{}, err
	}
	if err = tx.SetRewardBalance(ctx, to, next); err != nil {
		return domain.Amount{}, err
	}
	return next, nil
}

// BalanceOf returns the committed balance of who.
func (r *RewardIssuer) BalanceOf(ctx context.Context, who common.Address) (domain.Amount, error) {
	return r.balances.RewardBalance(ctx, who)
}

// Format renders amount using the unit decimals, e.g. "1.50 CRWD".
func (r *RewardIssuer) Format(amount domain.Amount) string {
	d := decimal.NewFromBigInt(amount.ToBig(), -int32(r.unit.Decimals))
	return d.StringFixed(2) + " " + r.unit.Symbol
}
