package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

type balanceResponse struct {
	Address domain.Address  `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	balance, err := h.svc.Balance(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Address: addr, Balance: balance})
}

type depositRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
	Amount  string `json:"amount" validate:"required,numeric"`
}

// handleDeposit credits an account from the faucet. Responds with 404
// when the faucet is disabled.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.caller(w, r); !ok {
		return
	}
	var req depositRequest
	if !h.decode(w, r, &req) {
		return
	}
	addr, err := domain.ParseAddress(req.Address)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	receipt, err := h.svc.Deposit(r.Context(), addr, amount)
	if err != nil {
		h.writeError(w, r, err, receipt)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptResponse(receipt))
}

// handleEvents returns outbox events with seq greater than `after`, at
// most `limit` of them.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	var (
		q     = r.URL.Query()
		after int64
		limit int
		err   error
	)
	if s := q.Get("after"); s != "" {
		after, err = strconv.ParseInt(s, 10, 64)
		if err != nil || after < 0 {
			h.badRequest(w, "invalid 'after'")
			return
		}
	}
	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			h.badRequest(w, "invalid 'limit'")
			return
		}
	}
	events, err := h.svc.Events(r.Context(), after, limit)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}
