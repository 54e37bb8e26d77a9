package db

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Seed creates a handful of demo campaigns through the ledger when it holds
// none yet, so a fresh local instance has something to show. It returns the
// number of campaigns created.
func Seed(ctx context.Context, ledger port.LedgerUseCase, creator common.Address) (int, error) {
	next, err := ledger.NextCampaignID(ctx)
	if err != nil {
		return 0, err
	}
	if next > 0 {
		return 0, nil
	}

	const day = 24 * 60 * 60
	oneEther := domain.NewAmount(1_000_000_000_000_000_000)
	demo := []struct {
		title string
		goal  uint64
		days  uint64
	}{
		{"Community garden", 5, 30},
		{"Open source audio codec", 20, 60},
		{"Neighbourhood library", 2, 14},
		{"Hackerspace tools", 10, 45},
		{"Solar school roof", 50, 90},
	}
	for i, d := range demo {
		goal := domain.NewAmount(d.goal)
		goal.Mul(&goal, &oneEther)
		_, err := ledger.CreateCampaign(ctx, creator, port.CreateCampaignReq{
			Title:           d.title,
			Goal:            goal,
			DurationSeconds: d.days * day,
		})
		if err != nil {
			return i, fmt.Errorf("seed campaign %q: %w", d.title, err)
		}
	}
	return len(demo), nil
}
