package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

const (
	codeInternal     = 1000
	codeBadRequest   = 1001
	codeUnauthorized = 1002
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 16

type errorResponse struct {
	Code    int              `json:"code"`
	Error   string           `json:"error"`
	Receipt *receiptResponse `json:"receipt,omitempty"`
}

type receiptResponse struct {
	ID     uuid.UUID            `json:"id"`
	Status domain.ReceiptStatus `json:"status"`
	Events []domain.Event       `json:"events"`
	Error  string               `json:"error,omitempty"`
}

func newReceiptResponse(r *domain.Receipt) *receiptResponse {
	if r == nil {
		return nil
	}
	resp := &receiptResponse{ID: r.ID, Status: r.Status, Events: r.Events}
	if resp.Events == nil {
		resp.Events = []domain.Event{}
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}

type campaignResponse struct {
	ID          int64           `json:"id"`
	Creator     domain.Address  `json:"creator"`
	Description string          `json:"description"`
	Goal        decimal.Decimal `json:"goal"`
	Deadline    time.Time       `json:"deadline"`
	Balance     decimal.Decimal `json:"balance"`
	Raised      decimal.Decimal `json:"raised"`
	Progress    string          `json:"progress"`
	Ended       bool            `json:"ended"`
	Outcome     domain.Outcome  `json:"outcome"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Creator:     c.Creator,
		Description: c.Description,
		Goal:        c.Goal,
		Deadline:    c.Deadline,
		Balance:     c.Balance,
		Raised:      c.Raised,
		Progress:    c.Progress().StringFixed(4),
		Ended:       c.Ended,
		Outcome:     c.Outcome,
		CreatedAt:   c.CreatedAt,
	}
}

type donorResponse struct {
	Address    domain.Address  `json:"address"`
	Amount     decimal.Decimal `json:"amount"`
	Refundable decimal.Decimal `json:"refundable"`
	Cleared    bool            `json:"cleared"`
	FirstAt    time.Time       `json:"first_at"`
}

func newDonorResponse(d domain.Donor) donorResponse {
	return donorResponse{Address: d.Address, Amount: d.Amount, Refundable: d.Refundable, Cleared: d.Cleared(), FirstAt: d.FirstAt}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf maps ledger errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrInvalidDeadline),
		errors.Is(err, domain.ErrValueMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrFaucetDisabled):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCampaignEnded),
		errors.Is(err, domain.ErrCampaignExpired),
		errors.Is(err, domain.ErrCampaignNotExpired),
		errors.Is(err, domain.ErrAlreadyEnded),
		errors.Is(err, domain.ErrCampaignNotEnded),
		errors.Is(err, domain.ErrNothingToRefund),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its code. Internal errors are logged and
// reported to sentry without leaking their text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, receipt *domain.Receipt) {
	status := statusOf(err)
	resp := errorResponse{Code: domain.Code(err), Error: err.Error(), Receipt: newReceiptResponse(receipt)}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		resp.Code = codeInternal
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Code: codeBadRequest, Error: msg})
}

// decode reads a JSON body of at most maxBodyBytes into dst and runs its
// validate tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Code: codeBadRequest, Error: "request body too large"})
			return false
		}
		h.badRequest(w, "invalid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.badRequest(w, err.Error())
		return false
	}
	return true
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		h.badRequest(w, "invalid campaign id")
		return 0, false
	}
	return id, true
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	addr, ok := Caller(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Code: codeUnauthorized, Error: errUnauthorized.Error()})
	}
	return addr, ok
}
