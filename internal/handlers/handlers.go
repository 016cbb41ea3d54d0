// Package handlers содержит HTTP-обработчики сервиса коротких ссылок.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/Totarae/tinyurl/internal/middleware"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/Totarae/tinyurl/internal/service"
	"go.uber.org/zap"
)

const (
	defaultListSize  = 100
	defaultUsageSize = 10
	maxBodySize      = 1 << 20
)

// Handler обработчики HTTP API.
type Handler struct {
	svc     *service.Services
	logger  *zap.Logger
	baseURL string
}

// NewHandler создаёт обработчики поверх сервисов.
func NewHandler(svc *service.Services, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// linkResponse ссылка вместе с полным коротким адресом.
type linkResponse struct {
	*model.ShortLink
	ShortURL string `json:"short_url"`
}

func (h *Handler) present(link *model.ShortLink) linkResponse {
	short := link.ShortCode
	if !strings.HasPrefix(short, "http://") && !strings.HasPrefix(short, "https://") {
		short = h.baseURL + "/" + short
	}
	return linkResponse{ShortLink: link, ShortURL: short}
}

func (h *Handler) presentAll(links []*model.ShortLink) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, h.present(l))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// fail отображает ошибку домена в HTTP-ответ.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrGeneratorFailed):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrDuplicate):
		writeDetail(w, http.StatusConflict, "Url already exists in the system")
	case errors.Is(err, model.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, model.ErrGone):
		writeDetail(w, http.StatusGone, "Item marked as deleted")
	default:
		h.logger.Error("request failed",
			zap.String("request_id", middleware.RequestID(r.Context())),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.Validationf("invalid url_id %q", raw)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.Validationf("%s must be an integer", name)
	}
	return n, nil
}

// parseWindow читает max-size и offset с проверкой границ.
func parseWindow(r *http.Request, defSize int) (offset, limit int, err error) {
	if limit, err = queryInt(r, "max-size", defSize); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(r, "offset", 0); err != nil {
		return 0, 0, err
	}
	if limit < 1 {
		return 0, 0, model.Validationf("max-size must be >= 1")
	}
	if offset < 0 {
		return 0, 0, model.Validationf("offset must be >= 0")
	}
	return offset, limit, nil
}

// clientFrom адрес клиента из RemoteAddr; порт 0, если его нет.
func clientFrom(r *http.Request) model.Client {
	host, portStr, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return model.Client{Host: r.RemoteAddr}
	}
	port, _ := strconv.Atoi(portStr)
	return model.Client{Host: host, Port: port}
}

func notFoundDetail(id int64) string {
	return fmt.Sprintf("URL with url_id = %d doesn't exist", id)
}
