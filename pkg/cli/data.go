package cli

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/creatorpulse/creatorpulse/pkg/data"
	"github.com/creatorpulse/creatorpulse/pkg/engine"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryParamInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Error("error converting query string to int", "value", v, "error", err)
		return def
	}

	if i < 1 || i > queryResultLimitDefault {
		return def
	}

	return i
}

func pathProfileKey(r *http.Request) (engine.Platform, string) {
	return engine.Platform(chi.URLParam(r, "platform")), chi.URLParam(r, "handle")
}

func healthAPIHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version})
}

func profileSearchAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q parameter required")
			return
		}

		limit := queryParamInt(r, "limit", queryResultLimitDefault)

		list, err := data.SearchProfiles(cfg.DB, q, limit)
		if err != nil {
			slog.Error("failed to search profiles", "error", err)
			writeError(w, http.StatusInternalServerError, "error querying profiles")
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func profileAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, handle := pathProfileKey(r)

		p, err := data.GetProfile(cfg.DB, platform, handle)
		if err != nil {
			if errors.Is(err, data.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "profile not found")
				return
			}
			slog.Error("failed to get profile", "platform", platform, "handle", handle, "error", err)
			writeError(w, http.StatusInternalServerError, "error querying profile")
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func rateCardAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, handle := pathProfileKey(r)

		p, err := data.GetProfile(cfg.DB, platform, handle)
		if err != nil {
			if errors.Is(err, data.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "profile not found")
				return
			}
			slog.Error("failed to get profile", "platform", platform, "handle", handle, "error", err)
			writeError(w, http.StatusInternalServerError, "error querying profile")
			return
		}

		card, err := engine.ComputeRateCard(p, cfg.Rates)
		if err != nil {
			if errors.Is(err, engine.ErrNoBaseRates) {
				writeError(w, http.StatusUnprocessableEntity, "no base rates configured for platform")
				return
			}
			slog.Error("failed to compute rate card", "platform", platform, "handle", handle, "error", err)
			writeError(w, http.StatusInternalServerError, "error computing rate card")
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

func auditAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, handle := pathProfileKey(r)

		p, err := data.GetProfile(cfg.DB, platform, handle)
		if err != nil {
			if errors.Is(err, data.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "profile not found")
				return
			}
			slog.Error("failed to get profile", "platform", platform, "handle", handle, "error", err)
			writeError(w, http.StatusInternalServerError, "error querying profile")
			return
		}

		report, err := engine.ComputeAuditReport(p)
		if err != nil {
			slog.Error("failed to compute audit report", "platform", platform, "handle", handle, "error", err)
			writeError(w, http.StatusInternalServerError, "error computing audit report")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
