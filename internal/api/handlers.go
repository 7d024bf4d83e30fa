package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trendsift/trendsift/internal/models"
	"github.com/trendsift/trendsift/internal/normalize"
)

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func handleCleanBatch(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Category == "" {
		req.Category = models.DefaultCategory
	}

	rows, err := normalize.NormalizeBatch(platform, req.Category, req.Items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "normalization failed", err)
		return
	}

	slog.Info("[API] Cleaned batch",
		slog.String("platform", string(platform)),
		slog.String("category", req.Category),
		slog.Int("in", len(req.Items)),
		slog.Int("out", len(rows)))

	writeJSON(w, http.StatusOK, models.CleanResponse{Rows: rows, Count: len(rows)})
}

func handleCleanSingle(w http.ResponseWriter, r *http.Request) {
	platform, ok := platformFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CleanSingleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Category == "" {
		req.Category = models.DefaultCategory
	}

	row, err := normalize.NormalizeOne(platform, req.Category, req.Item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "normalization failed", err)
		return
	}

	writeJSON(w, http.StatusOK, models.CleanSingleResponse{Row: row})
}

func platformFromRequest(w http.ResponseWriter, r *http.Request) (models.Platform, bool) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	if !platform.Known() {
		writeError(w, http.StatusNotFound, "unknown platform", nil)
		return "", false
	}
	return platform, true
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeError reports a failure with its diagnostic detail; the core's
// error already carries the structural context (and stack, for
// recovered panics).
func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
		slog.Error("[API] Request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[API] Failed to encode response",
			slog.String("error", err.Error()))
	}
}
