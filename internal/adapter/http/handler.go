package httpadapter

import (
	"log/slog"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/jny0444/crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ledger use case, the authenticator that turns bearer tokens
// into caller addresses and a logger for structured logging. Routes are
// registered on a chi.Router.
type Handler struct {
	svc      port.LedgerUseCase
	auth     *Authenticator
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Read endpoints
// are public; every mutating endpoint requires a bearer token whose subject
// is the caller address.
func NewHandler(svc port.LedgerUseCase, auth *Authenticator, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		auth:     auth,
		logger:   logger,
		validate: validator.New(),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, h.recoverer, sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/count", h.handleTotalCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/donors", h.handleListDonors)
		r.Get("/campaigns/{id}/donors/export", h.handleExportDonors)
		r.Get("/accounts/{address}", h.handleBalance)
		r.Get("/events", h.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Post("/campaigns", h.handleStartCampaign)
			r.Post("/campaigns/{id}/contributions", h.handleContribute)
			r.Post("/campaigns/{id}/end", h.handleEndCampaign)
			r.Post("/campaigns/{id}/refund", h.handleClaimRefund)
			r.Post("/accounts/deposit", h.handleDeposit)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// recoverer turns panics into a 500 response. Reporting is done by the
// sentry middleware, which re-panics into this one.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.logger.Error("handler panic", slog.Any("panic", rec), slog.String("path", r.URL.Path))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Code: codeInternal, Error: "internal error"})
		}()
		next.ServeHTTP(w, r)
	})
}
