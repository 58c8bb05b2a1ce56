package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/astrolab/aspectra/internal/chart"
	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/palette"
	"github.com/astrolab/aspectra/pkg/angles"
)

// Handlers holds the request handlers and their shared state.
type Handlers struct {
	table     *ingest.Table
	orb       float64
	palette   *palette.Allocator
	formatter *Formatter
	logger    *zap.SugaredLogger
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.formatter.WriteResponse(w, r, map[string]string{"status": "ok"})
}

// ListBodies returns the body names present in the loaded table.
func (h *Handlers) ListBodies(w http.ResponseWriter, r *http.Request) {
	h.formatter.WriteResponse(w, r, map[string]any{"bodies": h.table.Names()})
}

// LongitudeChart returns the longitude chart dataset for every body.
func (h *Handlers) LongitudeChart(w http.ResponseWriter, r *http.Request) {
	ds := chart.BuildLongitude(h.table, h.palette)
	if err := h.formatter.WriteResponse(w, r, ds); err != nil {
		h.logger.Errorf("writing longitude response: %v", err)
	}
}

// AspectChart returns the aspect-distance dataset for the reference body
// in the path. Optional query parameters: orb (degrees) and aspects
// (comma-separated names; default all four).
func (h *Handlers) AspectChart(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]

	orb := h.orb
	if v := r.URL.Query().Get("orb"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid orb", http.StatusBadRequest)
			return
		}
		orb = parsed
	}

	aspects := angles.All()
	if v := r.URL.Query().Get("aspects"); v != "" {
		aspects = aspects[:0]
		for _, name := range strings.Split(v, ",") {
			a, ok := angles.ByName(strings.TrimSpace(name))
			if !ok {
				http.Error(w, "unknown aspect: "+name, http.StatusBadRequest)
				return
			}
			aspects = append(aspects, a)
		}
	}

	ds, err := chart.BuildAspects(h.table, ref, aspects, orb, h.palette)
	switch {
	case errors.Is(err, ingest.ErrUnknownSeries):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ingest.ErrEmptyComparisonSet):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Errorf("building aspect dataset: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.formatter.WriteResponse(w, r, ds); err != nil {
		h.logger.Errorf("writing aspect response: %v", err)
	}
}
