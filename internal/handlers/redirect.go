package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/go-chi/chi/v5"
)

// Redirect GET /api/v1/tinyurl/{id}: 307 на исходный адрес, 404 или 410.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	target, err := h.svc.Redirector.Redirect(r.Context(), id, clientFrom(r))
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail(id))
	case errors.Is(err, model.ErrGone):
		writeDetail(w, http.StatusGone, fmt.Sprintf("URL with url_id = %d marked as deleted", id))
	case err != nil:
		h.fail(w, r, err)
	default:
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

// RedirectByCode GET /{code}: переход по короткому коду.
func (h *Handler) RedirectByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeDetail(w, http.StatusBadRequest, "missing short code")
		return
	}

	target, err := h.svc.Redirector.RedirectByCode(r.Context(), code, clientFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// UsageStatus GET /api/v1/tinyurl/{id}/status?full-info=&max-size=&offset=
func (h *Handler) UsageStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	offset, limit, err := parseWindow(r, defaultUsageSize)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	full, err := queryBool(r, "full-info")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	status, err := h.svc.Usage.Status(r.Context(), id, offset, limit, full)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if status.Full {
		writeJSON(w, http.StatusOK, status.Events)
		return
	}
	writeJSON(w, http.StatusOK, status.Count)
}
