package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/point-ledger/internal/api/httpx"
	"github.com/baharkarakas/point-ledger/internal/api/validate"
	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/baharkarakas/point-ledger/internal/services"
)

// PointService is what the handlers need from the ledger.
type PointService interface {
	Charge(ctx context.Context, userID, amount int64) (models.Balance, error)
	Use(ctx context.Context, userID, amount int64) (models.Balance, error)
	Balance(ctx context.Context, userID int64) (models.Balance, error)
	History(ctx context.Context, userID int64) ([]models.HistoryRecord, error)
}

type PointHandler struct {
	svc PointService
	log *slog.Logger
}

func NewPointHandler(svc PointService, log *slog.Logger) *PointHandler {
	return &PointHandler{svc: svc, log: log}
}

func (h *PointHandler) Routes(r chi.Router) {
	r.Get("/{id}", h.Get)
	r.Get("/{id}/histories", h.Histories)
	r.Patch("/{id}/charge", h.Charge)
	r.Patch("/{id}/use", h.Use)
}

func (h *PointHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	h.log.InfoContext(r.Context(), "point lookup requested", "user_id", uid)

	b, err := h.svc.Balance(r.Context(), uid)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "point lookup done", "user_id", uid, "point", b.Points)
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *PointHandler) Histories(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	h.log.InfoContext(r.Context(), "point history requested", "user_id", uid)

	recs, err := h.svc.History(r.Context(), uid)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "point history done", "user_id", uid, "count", len(recs))
	httpx.WriteJSON(w, http.StatusOK, recs)
}

func (h *PointHandler) Charge(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, models.TxnCharge, h.svc.Charge)
}

func (h *PointHandler) Use(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, models.TxnUse, h.svc.Use)
}

func (h *PointHandler) mutate(w http.ResponseWriter, r *http.Request, typ models.TransactionType, op func(context.Context, int64, int64) (models.Balance, error)) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	amount, err := validate.Amount(r.Body)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	h.log.InfoContext(r.Context(), "point mutation requested", "type", typ, "user_id", uid, "amount", amount)

	b, err := op(r.Context(), uid, amount)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "point mutation done", "type", typ, "user_id", uid, "point", b.Points)
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *PointHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ef := validate.UserID("id", chi.URLParam(r, "id"))
	if ef != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_user_id", ef.Error(), validate.Errs{*ef})
		return 0, false
	}
	return uid, true
}

func (h *PointHandler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var insufficient *services.InsufficientBalanceError
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", err.Error(), nil)
	case errors.As(err, &insufficient):
		httpx.WriteError(w, http.StatusConflict, "insufficient_points", err.Error(), map[string]int64{
			"required": insufficient.Required,
			"current":  insufficient.Current,
		})
	case errors.Is(err, services.ErrPointsOverflow):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "points_overflow", err.Error(), nil)
	default:
		h.log.ErrorContext(r.Context(), "point request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
