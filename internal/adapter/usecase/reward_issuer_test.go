package usecase

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

func TestRewardIssuerMint(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	issuer := NewRewardIssuer(repo, controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})

	err := repo.Atomically(ctx, func(tx port.LedgerTx) error {
		balance, err := issuer.Mint(ctx, tx, controller, alice, amt(700))
		require.NoError(t, err)
		assert.Equal(t, amt(700), balance)

		balance, err = issuer.Mint(ctx, tx, controller, alice, amt(300))
		require.NoError(t, err)
		assert.Equal(t, amt(1000), balance)
		return nil
	})
	require.NoError(t, err)

	got, err := issuer.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, amt(1000), got)

	got, err = issuer.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestRewardIssuerMintRejections(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	issuer := NewRewardIssuer(repo, controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})

	err := repo.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := issuer.Mint(ctx, tx, alice, alice, amt(1))
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = issuer.Mint(ctx, tx, controller, alice, amt(0))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = issuer.Mint(ctx, tx, controller, bob, *new(uint256.Int).SetAllOne())
		require.NoError(t, err)
		_, err = issuer.Mint(ctx, tx, controller, bob, amt(1))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		return nil
	})
	require.NoError(t, err)

	got, err := issuer.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestRewardIssuerUnitAndFormat(t *testing.T) {
	issuer := NewRewardIssuer(memory.NewLedgerRepository(), controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})
	assert.Equal(t, RewardUnit{Decimals: 18, Symbol: "CRWD"}, issuer.Unit())

	v, err := domain.ParseAmount("1500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1.50 CRWD", issuer.Format(v))
	assert.Equal(t, "0.00 CRWD", issuer.Format(amt(0)))

	whole := NewRewardIssuer(memory.NewLedgerRepository(), controller, RewardUnit{Decimals: 0, Symbol: "PTS"})
	assert.Equal(t, "42.00 PTS", whole.Format(amt(42)))
}
