package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/core/port/mocks"
)

const callerHex = "0x2222222222222222222222222222222222222222"

var caller = common.HexToAddress(callerHex)

func newTestHandler(t *testing.T) (*mocks.MockLedgerUseCase, http.Handler) {
	svc := mocks.NewMockLedgerUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.nowFn = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc, h.Router()
}

func do(t *testing.T, router http.Handler, method, path, body string, withCaller bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if withCaller {
		req.Header.Set(CallerHeader, callerHex)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateCampaign(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().CreateCampaign(mock.Anything, caller, port.CreateCampaignReq{
		Title:           "Garden",
		Goal:            domain.NewAmount(1000),
		DurationSeconds: 3600,
	}).Return(uint64(4), nil).Once()

	rec := do(t, router, http.MethodPost, "/api/v1/campaigns", `{"title":"Garden","goal":"1000","duration_seconds":3600}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":4}`, rec.Body.String())
}

func TestMutationsRequireCaller(t *testing.T) {
	_, router := newTestHandler(t)

	for _, path := range []string{
		"/api/v1/campaigns",
		"/api/v1/campaigns/0/contributions",
		"/api/v1/campaigns/0/finalize",
		"/api/v1/campaigns/0/refund",
	} {
		rec := do(t, router, http.MethodPost, path, `{}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/0/finalize", nil)
	req.Header.Set(CallerHeader, "not-an-address")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContribute(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Contribute(mock.Anything, caller, uint64(2), port.ContributeReq{
		Amount:     domain.NewAmount(5),
		DepositRef: "0xfeed",
	}).Return(&domain.Receipt{
		CampaignID:   2,
		Contributor:  caller,
		Amount:       domain.NewAmount(5),
		RewardMinted: domain.NewAmount(500),
		Total:        domain.NewAmount(15),
		Raised:       domain.NewAmount(40),
	}, nil).Once()

	rec := do(t, router, http.MethodPost, "/api/v1/campaigns/2/contributions", `{"amount":"5","deposit_ref":"0xfeed"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"campaign_id": 2,
		"contributor": "`+callerHex+`",
		"amount": "5",
		"reward_minted": "500",
		"total_contribution": "15",
		"raised": "40"
	}`, rec.Body.String())
}

func TestContributeRejectsBadAmount(t *testing.T) {
	_, router := newTestHandler(t)
	for _, body := range []string{`{"amount":"-1"}`, `{"amount":"1.5"}`, `{"amount":5}`, `not json`} {
		rec := do(t, router, http.MethodPost, "/api/v1/campaigns/2/contributions", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestContributeRejectsOversizedBody(t *testing.T) {
	_, router := newTestHandler(t)
	body := `{"amount":"5","deposit_ref":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, router, http.MethodPost, "/api/v1/campaigns/2/contributions", body, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrAlreadyFinalized, http.StatusConflict},
		{domain.ErrNotEnded, http.StatusConflict},
		{fmt.Errorf("%w: node down", domain.ErrTransferFailed), http.StatusBadGateway},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{fmt.Errorf("value mismatch: %w", domain.ErrInvalidDeposit), http.StatusBadRequest},
		{domain.ErrDepositClaimed, http.StatusConflict},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc, router := newTestHandler(t)
			svc.EXPECT().Finalize(mock.Anything, caller, uint64(9)).Return(nil, tt.err).Once()

			rec := do(t, router, http.MethodPost, "/api/v1/campaigns/9/finalize", "", true)
			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.NotEmpty(t, body["error"])
			if tt.code == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body["error"])
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	svc, router := newTestHandler(t)
	creator := common.HexToAddress("0x1111111111111111111111111111111111111111")
	svc.EXPECT().Finalize(mock.Anything, caller, uint64(1)).Return(&domain.Settlement{
		CampaignID:  1,
		GoalReached: true,
		TotalRaised: domain.NewAmount(77),
		PaidTo:      &creator,
	}, nil).Once()

	rec := do(t, router, http.MethodPost, "/api/v1/campaigns/1/finalize", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign_id":1,"goal_reached":true,"total_raised":"77","paid_to":"0x1111111111111111111111111111111111111111"}`, rec.Body.String())
}

func TestWithdrawRefund(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().WithdrawRefund(mock.Anything, caller, uint64(3)).Return(domain.NewAmount(12), nil).Once()

	rec := do(t, router, http.MethodPost, "/api/v1/campaigns/3/refund", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign_id":3,"address":"`+callerHex+`","amount":"12"}`, rec.Body.String())
}

func TestGetCampaign(t *testing.T) {
	svc, router := newTestHandler(t)
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().GetCampaign(mock.Anything, uint64(0)).Return(&domain.Campaign{
		ID:        0,
		Title:     "Garden",
		Creator:   caller,
		Goal:      domain.NewAmount(10),
		Raised:    domain.NewAmount(3),
		Deadline:  deadline,
		CreatedAt: deadline.Add(-time.Hour),
	}, nil).Once()

	rec := do(t, router, http.MethodGet, "/api/v1/campaigns/0", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "10", body["goal"])
	assert.Equal(t, "3", body["raised"])
	assert.Equal(t, domain.StatusEnded, body["status"])
	assert.Equal(t, "2025-12-31T00:00:00Z", body["deadline"])

	rec = do(t, router, http.MethodGet, "/api/v1/campaigns/abc", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndNextID(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, 5, 2).Return([]domain.Campaign{{ID: 5}, {ID: 6}}, nil).Once()
	svc.EXPECT().ListCampaigns(mock.Anything, 0, maxPageLimit).Return([]domain.Campaign{}, nil).Once()
	svc.EXPECT().NextCampaignID(mock.Anything).Return(uint64(7), nil).Once()

	rec := do(t, router, http.MethodGet, "/api/v1/campaigns?offset=5&limit=2", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.EqualValues(t, 6, list[1]["id"])

	rec = do(t, router, http.MethodGet, "/api/v1/campaigns?limit=100000", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/v1/campaigns?offset=-1", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/campaigns/next-id", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"next_campaign_id":7}`, rec.Body.String())
}

func TestReadEndpoints(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Contribution(mock.Anything, uint64(1), caller).
		Return(domain.Contribution{CampaignID: 1, Contributor: caller, Amount: domain.NewAmount(8)}, nil).Once()
	svc.EXPECT().RefundableAmount(mock.Anything, uint64(1), caller).Return(domain.NewAmount(0), nil).Once()
	svc.EXPECT().RewardBalance(mock.Anything, caller).Return(&port.RewardBalance{
		Owner:     caller,
		Balance:   domain.NewAmount(800),
		Formatted: "0.00 CRWD",
		Symbol:    "CRWD",
		Decimals:  18,
	}, nil).Once()
	svc.EXPECT().CustodyBalance(mock.Anything).Return(domain.NewAmount(99), nil).Once()

	rec := do(t, router, http.MethodGet, "/api/v1/campaigns/1/contributions/"+callerHex, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "8", decode(t, rec)["amount"])

	rec = do(t, router, http.MethodGet, "/api/v1/campaigns/1/refunds/"+callerHex, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", decode(t, rec)["amount"])

	rec = do(t, router, http.MethodGet, "/api/v1/rewards/"+callerHex, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"address":"`+callerHex+`","balance":"800","formatted":"0.00 CRWD","symbol":"CRWD","decimals":18}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/v1/custody", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":"99"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/v1/rewards/0x123", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}
