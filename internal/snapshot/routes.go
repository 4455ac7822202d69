package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/render"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// RegisterRoutes mounts GET /api/snapshot.png. Query parameters w, h,
// frames and selected override the defaults in base.
func RegisterRoutes(r chi.Router, src states.Source, base Options, log zerolog.Logger) {
	r.Get("/api/snapshot.png", handleSnapshot(src, base, log))
}

func handleSnapshot(src states.Source, base Options, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseOptions(r, base)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Logger = log

		ds, err := src.Load(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("loading dataset")
			writeError(w, http.StatusInternalServerError, "Failed to load state data")
			return
		}

		var png bytes.Buffer
		err = Run(r.Context(), ds, opts, func(frame int, c *render.Canvas) error {
			if frame < opts.Frames {
				return nil
			}
			return c.EncodePNG(&png)
		})
		switch {
		case errors.Is(err, states.ErrNotFound):
			writeError(w, http.StatusNotFound, "State not found")
			return
		case errors.Is(err, ErrInvalidOptions):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			log.Error().Err(err).Msg("rendering snapshot")
			writeError(w, http.StatusInternalServerError, "Failed to render snapshot")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(png.Len()))
		w.Write(png.Bytes())
	}
}

func parseOptions(r *http.Request, base Options) (Options, error) {
	q := r.URL.Query()
	opts := base
	opts.Selected = q.Get("selected")
	for name, dst := range map[string]*int{"w": &opts.Width, "h": &opts.Height, "frames": &opts.Frames} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("invalid " + name + ": " + v)
		}
		*dst = n
	}
	if opts.Theme == (theme.Config{}) {
		opts.Theme = theme.Default()
	}
	return opts, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
