package domain

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// RewardMultiplier is the number of reward units minted per smallest unit of
// contributed value. It is economic policy and unrelated to the reward unit's
// display decimals.
const RewardMultiplier = 100

// Amount is an unsigned 256-bit quantity in the smallest unit of its asset.
type Amount = uint256.Int

// ParseAmount parses a base-10 unsigned integer. Values that do not fit into
// 256 bits are rejected with ErrInvalidAmount.
func ParseAmount(s string) (Amount, error) {
	v, err := uint256.FromDecimal(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return *v, nil
}

// NewAmount returns v as an Amount.
func NewAmount(v uint64) Amount {
	return *uint256.NewInt(v)
}

// AddAmounts returns a+b, failing with ErrInvalidAmount on overflow.
func AddAmounts(a, b Amount) (Amount, error) {
	var sum Amount
	if _, overflow := sum.AddOverflow(&a, &b); overflow {
		return Amount{}, fmt.Errorf("%w: sum exceeds 256 bits", ErrInvalidAmount)
	}
	return sum, nil
}

// SubAmounts returns a-b. It fails when b > a; callers only subtract what
// they previously added, so an underflow means corrupted state.
func SubAmounts(a, b Amount) (Amount, error) {
	var diff Amount
	if _, underflow := diff.SubOverflow(&a, &b); underflow {
		return Amount{}, fmt.Errorf("amount underflow: %s - %s", a.Dec(), b.Dec())
	}
	return diff, nil
}

// RewardFor returns the reward credited for a contribution of amount.
func RewardFor(amount Amount) (Amount, error) {
	var reward Amount
	if _, overflow := reward.MulOverflow(&amount, uint256.NewInt(RewardMultiplier)); overflow {
		return Amount{}, fmt.Errorf("%w: reward exceeds 256 bits", ErrInvalidAmount)
	}
	return reward, nil
}
