package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/go-chi/chi/v5"
)

// ListLinks GET /api/v1/tinyurl/?max-size=&offset=
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parseWindow(r, defaultListSize)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	links, err := h.svc.Links.List(r.Context(), offset, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presentAll(links))
}

// CreateLink POST /api/v1/tinyurl/ с телом {"url": "..."}
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req model.ShortenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	link, err := h.svc.Links.Create(r.Context(), req.URL)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.present(link))
}

// CreateLinks POST /api/v1/tinyurl/multi с телом [{"url": "..."}, ...]
func (h *Handler) CreateLinks(w http.ResponseWriter, r *http.Request) {
	var reqs []model.ShortenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&reqs); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	urls := make([]string, 0, len(reqs))
	for _, req := range reqs {
		urls = append(urls, req.URL)
	}

	links, err := h.svc.Links.CreateBatch(r.Context(), urls)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.presentAll(links))
}

// GetLink GET /api/v1/tinyurl/{id}/info
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	link, err := h.svc.Links.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.present(link))
}

// DeleteLink DELETE /api/v1/tinyurl/?url_id=
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("url_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	link, err := h.svc.Links.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.present(link))
}
