package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund-ledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ledger use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.LedgerUseCase
	logger *slog.Logger
	router chi.Router
	nowFn  func() time.Time
}

// NewHandler creates a handler with all routes configured. Mutating routes
// require the caller identity header set by the upstream wallet layer.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, nowFn: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Get("/next-id", h.handleNextCampaignID)
			r.With(h.requireCaller).Post("/", h.handleCreateCampaign)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Get("/contributions/{address}", h.handleGetContribution)
				r.Get("/refunds/{address}", h.handleRefundableAmount)

				r.Group(func(r chi.Router) {
					r.Use(h.requireCaller)
					r.Post("/contributions", h.handleContribute)
					r.Post("/finalize", h.handleFinalize)
					r.Post("/refund", h.handleWithdrawRefund)
				})
			})
		})
		r.Get("/rewards/{address}", h.handleRewardBalance)
		r.Get("/custody", h.handleCustodyBalance)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
