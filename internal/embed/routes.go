package embed

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Filename is the suggested name for a downloaded widget.
const Filename = "usa-globe-widget.html"

// RegisterRoutes mounts POST /api/embed. The request body is a theme JSON
// object; keys it omits take their values from base.
func RegisterRoutes(r chi.Router, src states.Source, base theme.Config, log zerolog.Logger) {
	r.Post("/api/embed", handleEmbed(src, base, log))
}

func handleEmbed(src states.Source, base theme.Config, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := base
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid theme: "+err.Error())
			return
		}
		if err := t.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid theme: "+err.Error())
			return
		}

		ds, err := src.Load(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading dataset")
			writeError(w, http.StatusInternalServerError, "Failed to load state data")
			return
		}

		doc, err := Generate(t, ds.Records())
		if err != nil {
			log.Error().Err(err).Msg("generating embed")
			writeError(w, http.StatusInternalServerError, "Failed to generate embed")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.URL.Query().Get("download") == "1" {
			w.Header().Set("Content-Disposition", `attachment; filename="`+Filename+`"`)
		}
		io.WriteString(w, doc)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
