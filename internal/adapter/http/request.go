package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"crowdfund-ledger/internal/core/domain"
)

// CallerHeader carries the caller identity asserted by the wallet layer.
const CallerHeader = "X-Caller-Address"

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

type callerKey struct{}

// requireCaller rejects requests without a valid caller identity and stores
// the parsed identity in the request context.
func (h *Handler) requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(CallerHeader)
		if raw == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + CallerHeader + " header"})
			return
		}
		caller, err := domain.ParseAddress(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

func callerFrom(ctx context.Context) common.Address {
	caller, _ := ctx.Value(callerKey{}).(common.Address)
	return caller
}

func campaignIDParam(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: campaign id %q", domain.ErrInvalidParameters, chi.URLParam(r, "id"))
	}
	return id, nil
}

func addressParam(r *http.Request) (common.Address, error) {
	return domain.ParseAddress(chi.URLParam(r, "address"))
}

func pageParams(r *http.Request) (offset, limit int, err error) {
	q := r.URL.Query()
	limit = defaultPageLimit
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("%w: offset %q", domain.ErrInvalidParameters, v)
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("%w: limit %q", domain.ErrInvalidParameters, v)
		}
	}
	return offset, min(limit, maxPageLimit), nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", domain.ErrInvalidParameters, err)
	}
	return nil
}

type createCampaignRequest struct {
	Title           string `json:"title"`
	Goal            string `json:"goal"`
	DurationSeconds uint64 `json:"duration_seconds"`
}

type contributeRequest struct {
	Amount     string `json:"amount"`
	DepositRef string `json:"deposit_ref,omitempty"`
}

type createCampaignResponse struct {
	ID uint64 `json:"id"`
}

type nextIDResponse struct {
	NextCampaignID uint64 `json:"next_campaign_id"`
}

type campaignResponse struct {
	ID        uint64         `json:"id"`
	Title     string         `json:"title"`
	Creator   common.Address `json:"creator"`
	Goal      string         `json:"goal"`
	Raised    string         `json:"raised"`
	Deadline  time.Time      `json:"deadline"`
	CreatedAt time.Time      `json:"created_at"`
	Finalized bool           `json:"finalized"`
	Status    string         `json:"status"`
}

func newCampaignResponse(c *domain.Campaign, now time.Time) campaignResponse {
	return campaignResponse{
		ID:        c.ID,
		Title:     c.Title,
		Creator:   c.Creator,
		Goal:      c.Goal.Dec(),
		Raised:    c.Raised.Dec(),
		Deadline:  c.Deadline,
		CreatedAt: c.CreatedAt,
		Finalized: c.Finalized,
		Status:    c.Status(now),
	}
}

type receiptResponse struct {
	CampaignID        uint64         `json:"campaign_id"`
	Contributor       common.Address `json:"contributor"`
	Amount            string         `json:"amount"`
	RewardMinted      string         `json:"reward_minted"`
	TotalContribution string         `json:"total_contribution"`
	Raised            string         `json:"raised"`
}

type settlementResponse struct {
	CampaignID  uint64          `json:"campaign_id"`
	GoalReached bool            `json:"goal_reached"`
	TotalRaised string          `json:"total_raised"`
	PaidTo      *common.Address `json:"paid_to,omitempty"`
}

type amountResponse struct {
	CampaignID uint64         `json:"campaign_id"`
	Address    common.Address `json:"address"`
	Amount     string         `json:"amount"`
}

type rewardResponse struct {
	Address   common.Address `json:"address"`
	Balance   string         `json:"balance"`
	Formatted string         `json:"formatted"`
	Symbol    string         `json:"symbol"`
	Decimals  uint8          `json:"decimals"`
}

type custodyResponse struct {
	Balance string `json:"balance"`
}
