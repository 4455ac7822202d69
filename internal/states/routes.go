package states

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Error bodies returned by the lookup endpoints.
const (
	msgNotFound   = "State not found"
	msgLoadFailed = "Failed to load state data"
)

// RegisterRoutes mounts the dataset endpoints under /api on the given router.
func RegisterRoutes(r chi.Router, src Source, log zerolog.Logger) {
	r.Get("/api/states", handleList(src, log))
	r.Get("/api/state/{abbr}", handleLookup(src, log))
	r.Get("/api/state/{abbr}/card", handleCard(src, log))
}

func handleList(src Source, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, err := src.Load(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading dataset")
			writeError(w, http.StatusInternalServerError, msgLoadFailed)
			return
		}
		writeJSON(w, http.StatusOK, ds.Records())
	}
}

// lookup resolves the {abbr} parameter, writing the error response itself
// when it fails.
func lookup(w http.ResponseWriter, r *http.Request, src Source, log zerolog.Logger) (Record, bool) {
	ds, err := src.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("loading dataset")
		writeError(w, http.StatusInternalServerError, msgLoadFailed)
		return Record{}, false
	}
	rec, err := ds.Lookup(chi.URLParam(r, "abbr"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return Record{}, false
	}
	return rec, true
}

func handleLookup(src Source, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rec, ok := lookup(w, r, src, log); ok {
			writeJSON(w, http.StatusOK, rec)
		}
	}
}

func handleCard(src Source, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := lookup(w, r, src, log)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := WriteCard(w, rec); err != nil {
			log.Error().Err(err).Str("abbr", rec.Abbreviation).Msg("rendering card")
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
