package httpadapter

import (
	"net/http"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// handleContribute records a contribution of the caller. The body carries
// the amount as a base-10 string in the smallest value unit and, when the
// payment was made up front, the reference of that deposit.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req contributeRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	receipt, err := h.svc.Contribute(r.Context(), callerFrom(r.Context()), id, port.ContributeReq{
		Amount:     amount,
		DepositRef: req.DepositRef,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, receiptResponse{
		CampaignID:        receipt.CampaignID,
		Contributor:       receipt.Contributor,
		Amount:            receipt.Amount.Dec(),
		RewardMinted:      receipt.RewardMinted.Dec(),
		TotalContribution: receipt.Total.Dec(),
		Raised:            receipt.Raised.Dec(),
	})
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	who, err := addressParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Contribution(r.Context(), id, who)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{CampaignID: id, Address: who, Amount: c.Amount.Dec()})
}

// handleRefundableAmount reports what the address could withdraw now. It
// answers zero for unknown campaigns.
func (h *Handler) handleRefundableAmount(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	who, err := addressParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	amount, err := h.svc.RefundableAmount(r.Context(), id, who)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{CampaignID: id, Address: who, Amount: amount.Dec()})
}
