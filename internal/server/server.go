// Package server is the local development server: it serves a project's
// region and validation report and regenerates the layout on request.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Lrrr908/sewer-showdown/internal/store"
	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Server is the local development server for a project directory.
type Server struct {
	projectPath string
	port        int
	history     *store.Store // optional

	mu      sync.Mutex
	metrics *metrics
}

// New creates a server for the given project directory. history may be nil.
func New(projectPath string, port int, history *store.Store) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		history:     history,
		metrics:     newMetrics(),
	}
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, s.metrics.instrument(pattern, h))
	}

	route("GET /api/region", s.handleRegion)
	route("GET /api/validation", s.handleValidation)
	route("POST /api/generate", s.handleGenerate)
	route("GET /api/history", s.handleHistory)
	mux.Handle("GET /metrics", s.metrics.handler())
	route("GET /{$}", s.handleIndex)
	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("urbanplan server starting", "url", "http://localhost"+addr, "project", s.projectPath)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>urbanplan</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>urbanplan</h1>
<p><code>GET /api/region</code> &middot; <code>GET /api/validation</code> &middot; <code>POST /api/generate</code> &middot; <code>GET /metrics</code></p>
</div>
</body></html>`)
}

func (s *Server) handleRegion(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := region.FindProjectFile(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	rg, err := region.Load(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rg)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, report, err := pipeline.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	report.Merge(validation.ValidateConfig(p.Config))
	report.Merge(validation.ValidateRegion(p.Region))
	writeJSON(w, http.StatusOK, report)
}

type generateResponse struct {
	RunID      string             `json:"run_id,omitempty"`
	Saved      bool               `json:"saved"`
	Stats      *pipeline.Stats    `json:"stats,omitempty"`
	Validation *validation.Report `json:"validation"`
	Error      string             `json:"error,omitempty"`
}

// handleGenerate regenerates the project's layout. The region file is only
// rewritten when the request carries save=true.
func (s *Server) handleGenerate(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, report, err := pipeline.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	res, r, err := p.Generate()
	report.Merge(r)
	if err != nil {
		s.metrics.observeRun(nil, err)
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, generateResponse{Validation: report, Error: err.Error()})
		return
	}
	s.metrics.observeRun(&res.Stats, nil)

	resp := generateResponse{Stats: &res.Stats, Validation: report}
	if req.URL.Query().Get("save") == "true" {
		if err := p.Save(); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.Saved = true
	}
	if s.history != nil {
		id, err := s.history.Record(s.projectPath, p.Config.Seed, p.Region, res.Stats, report)
		if err != nil {
			slog.Warn("recording run failed", "err", err)
		}
		resp.RunID = id
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, errors.New("run history is not enabled"))
		return
	}
	runs, err := s.history.Runs(50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func isInputError(err error) bool {
	for _, target := range []error{
		pipeline.ErrEmptyTerrain, pipeline.ErrJaggedTerrain, pipeline.ErrNoTowns,
		pipeline.ErrInvalidRegion, pipeline.ErrInvalidConfig,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
