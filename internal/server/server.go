// Package server exposes built chart configurations over HTTP as JSON.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"CandleView/internal/chart"
	"CandleView/internal/collector"
	"CandleView/internal/generator"
	"CandleView/internal/recorder"
)

// MaxCount caps generated series requested over HTTP.
const MaxCount = 100000

// History is implemented by recorders that can list past builds.
type History interface {
	Recent(limit int) ([]recorder.BuildEvent, error)
}

// Server serves chart options.
type Server struct {
	Cache        *chart.Cache
	Recorder     recorder.Recorder
	Limiter      *rate.Limiter
	DefaultCount int
	// GenOptions are passed to every generator call; tests inject a source.
	GenOptions []generator.Option
}

// New creates a Server allowing rps requests per second with the given burst.
func New(cache *chart.Cache, rec recorder.Recorder, rps float64, burst, defaultCount int) *Server {
	return &Server{
		Cache:        cache,
		Recorder:     rec,
		Limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		DefaultCount: defaultCount,
	}
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/chart/generated", s.handleGeneratedChart)
	mux.HandleFunc("GET /api/series/generated", s.handleGeneratedSeries)
	mux.HandleFunc("GET /api/builds", s.handleBuilds)
	return requestID(accessLog(s.rateLimit(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	opt, builtAt, ok := s.Cache.Get()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "chart not built yet")
		return
	}
	w.Header().Set("Last-Modified", builtAt.UTC().Format(http.TimeFormat))
	writeJSON(w, http.StatusOK, opt)
}

func (s *Server) handleGeneratedChart(w http.ResponseWriter, r *http.Request) {
	count, err := s.parseCount(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	started := time.Now()
	res, err := collector.BuildSynthetic(count, s.GenOptions...)
	evt := &recorder.BuildEvent{
		ID:       uuid.NewString(),
		Kind:     recorder.KindGenerated,
		Source:   "synthetic",
		Duration: time.Since(started),
	}
	if err != nil {
		evt.Err = err.Error()
	} else {
		evt.Records = res.Records
	}
	if recErr := s.Recorder.RecordBuild(evt); recErr != nil {
		zerolog.Ctx(r.Context()).Error().Err(recErr).Msg("record build")
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res.Option)
}

func (s *Server) handleGeneratedSeries(w http.ResponseWriter, r *http.Request) {
	count, err := s.parseCount(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	series, err := generator.Generate(count, s.GenOptions...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, series)
}

type buildView struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Source     string `json:"source"`
	Records    int    `json:"records"`
	Windows    []int  `json:"windows,omitempty"`
	DurationMS int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
}

func (s *Server) handleBuilds(w http.ResponseWriter, r *http.Request) {
	h, ok := s.Recorder.(History)
	if !ok {
		writeError(w, http.StatusNotImplemented, "build history is not recorded")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}
	events, err := h.Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	views := make([]buildView, len(events))
	for i, e := range events {
		views[i] = buildView{
			ID:         e.ID,
			Kind:       e.Kind,
			Source:     e.Source,
			Records:    e.Records,
			Windows:    e.Windows,
			DurationMS: e.Duration.Milliseconds(),
			Error:      e.Err,
		}
	}
	writeJSON(w, http.StatusOK, views)
}

var errBadCount = errors.New("count must be an integer between 1 and 100000")

func (s *Server) parseCount(r *http.Request) (int, error) {
	v := r.URL.Query().Get("count")
	if v == "" {
		return s.DefaultCount, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > MaxCount {
		return 0, errBadCount
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
