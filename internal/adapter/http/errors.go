package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund-ledger/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps ledger errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDeposit):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyFinalized),
		errors.Is(err, domain.ErrCampaignEnded),
		errors.Is(err, domain.ErrNotEnded),
		errors.Is(err, domain.ErrNotRefundable),
		errors.Is(err, domain.ErrNothingToRefund),
		errors.Is(err, domain.ErrReentrantCall),
		errors.Is(err, domain.ErrDepositClaimed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Internal failures are logged and their
// details are not sent to the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		msg = "internal error"
	case status == http.StatusBadGateway:
		h.logger.Warn("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		msg = domain.ErrTransferFailed.Error()
	default:
		h.logger.Debug("request rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
