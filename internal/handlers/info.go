package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/Totarae/tinyurl/internal/model"
)

// APIVersion версия HTTP API.
const APIVersion = "v1"

// Version GET /info/version
func (h *Handler) Version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.VersionResponse{API: APIVersion, Go: runtime.Version()})
}

// Ping GET /info/ping: состояние хранилища. Всегда 200, причина сбоя в теле.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Health.Check(r.Context()))
}

// Healthz GET /healthz: процесс жив.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"version":   APIVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.Validationf("%s must be a boolean", name)
	}
	return b, nil
}
