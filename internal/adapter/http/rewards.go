package httpadapter

import "net/http"

func (h *Handler) handleRewardBalance(w http.ResponseWriter, r *http.Request) {
	who, err := addressParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.svc.RewardBalance(r.Context(), who)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rewardResponse{
		Address:   b.Owner,
		Balance:   b.Balance.Dec(),
		Formatted: b.Formatted,
		Symbol:    b.Symbol,
		Decimals:  b.Decimals,
	})
}

func (h *Handler) handleCustodyBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.CustodyBalance(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, custodyResponse{Balance: balance.Dec()})
}
