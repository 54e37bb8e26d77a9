package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount(" 1000 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), v.Uint64())

	top := new(uint256.Int).SetAllOne()
	v, err = ParseAmount(top.Dec())
	require.NoError(t, err)
	assert.True(t, v.Eq(top))

	for _, in := range []string{"-1", "1.5", "0x10", "1" + top.Dec()} {
		_, err = ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestAmountArithmetic(t *testing.T) {
	top := *new(uint256.Int).SetAllOne()

	_, err := AddAmounts(top, NewAmount(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SubAmounts(NewAmount(1), NewAmount(2))
	assert.Error(t, err)

	reward, err := RewardFor(NewAmount(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(700), reward.Uint64())

	var large Amount
	large.Rsh(&top, 4)
	_, err = RewardFor(large)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCampaignStatus(t *testing.T) {
	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{Goal: NewAmount(10), Deadline: deadline}

	assert.Equal(t, StatusOpen, c.Status(deadline.Add(-time.Second)))
	assert.True(t, c.Ended(deadline))
	assert.Equal(t, StatusEnded, c.Status(deadline))

	c.Finalized = true
	assert.True(t, c.Refundable())
	assert.Equal(t, StatusRefundable, c.Status(deadline))

	c.Raised = NewAmount(10)
	assert.True(t, c.GoalReached())
	assert.False(t, c.Refundable())
	assert.Equal(t, StatusPaid, c.Status(deadline))
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(fmt.Errorf("contribute: %w", ErrCampaignEnded)))
	assert.False(t, IsRejection(ErrTransferFailed))
	assert.False(t, IsRejection(fmt.Errorf("db down")))
}
