package httpadapter

import (
	"net/http"
	"time"

	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

type startCampaignRequest struct {
	Description string    `json:"description" validate:"required,max=2048"`
	Goal        string    `json:"goal" validate:"required,numeric"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

type startCampaignResponse struct {
	CampaignID int64            `json:"campaign_id"`
	Receipt    *receiptResponse `json:"receipt"`
}

// handleStartCampaign creates a campaign owned by the caller. Responds
// with 201 and the new id on success.
func (h *Handler) handleStartCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req startCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	goal, err := domain.ParseAmount(req.Goal)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	id, receipt, err := h.svc.StartCampaign(r.Context(), caller, port.StartCampaignReq{
		Description: req.Description,
		Goal:        goal,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.writeError(w, r, err, receipt)
		return
	}
	writeJSON(w, http.StatusCreated, startCampaignResponse{CampaignID: id, Receipt: newReceiptResponse(receipt)})
}

type contributeRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
	// Value is the amount attached to the call. Defaults to Amount.
	Value string `json:"value" validate:"omitempty,numeric"`
}

func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req contributeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Value == "" {
		req.Value = req.Amount
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	value, err := domain.ParseAmount(req.Value)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	receipt, err := h.svc.Contribute(r.Context(), caller, port.ContributeReq{CampaignID: id, Amount: amount, Value: value})
	if err != nil {
		h.writeError(w, r, err, receipt)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptResponse(receipt))
}

func (h *Handler) handleEndCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	receipt, err := h.svc.EndCampaign(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err, receipt)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptResponse(receipt))
}

type refundResponse struct {
	Amount  string           `json:"amount"`
	Receipt *receiptResponse `json:"receipt"`
}

func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	amount, receipt, err := h.svc.ClaimRefund(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err, receipt)
		return
	}
	writeJSON(w, http.StatusOK, refundResponse{Amount: amount.String(), Receipt: newReceiptResponse(receipt)})
}

// handleListCampaigns returns campaigns in creation order. Optional
// `status` (all, active, completed, trending, ended) and `q` query
// parameters narrow the listing.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, ok := domain.ParseStatusFilter(q.Get("status"))
	if !ok {
		h.badRequest(w, "invalid status")
		return
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), domain.CampaignFilter{Status: status, Query: q.Get("q")})
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, newCampaignResponse(&campaigns[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTotalCampaigns(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total": total})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handleListDonors(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	donors, err := h.svc.ListDonors(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	resp := make([]donorResponse, 0, len(donors))
	for _, d := range donors {
		resp = append(resp, newDonorResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}
