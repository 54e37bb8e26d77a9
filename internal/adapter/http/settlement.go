package httpadapter

import (
	"net/http"
)

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Finalize(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settlementResponse{
		CampaignID:  s.CampaignID,
		GoalReached: s.GoalReached,
		TotalRaised: s.TotalRaised.Dec(),
		PaidTo:      s.PaidTo,
	})
}

func (h *Handler) handleWithdrawRefund(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	caller := callerFrom(r.Context())
	amount, err := h.svc.WithdrawRefund(r.Context(), caller, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{CampaignID: id, Address: caller, Amount: amount.Dec()})
}
