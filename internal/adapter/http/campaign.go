package httpadapter

import (
	"net/http"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// handleCreateCampaign creates a campaign owned by the caller and returns
// its id with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	goal, err := domain.ParseAmount(req.Goal)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), callerFrom(r.Context()), port.CreateCampaignReq{
		Title:           req.Title,
		Goal:            goal,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), offset, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	now := h.nowFn()
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, newCampaignResponse(&campaigns[i], now))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleNextCampaignID(w http.ResponseWriter, r *http.Request) {
	next, err := h.svc.NextCampaignID(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nextIDResponse{NextCampaignID: next})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c, h.nowFn()))
}
