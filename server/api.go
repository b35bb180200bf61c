package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/lexcodex/epimake/makefile"
	"github.com/lexcodex/epimake/persistence"
)

// APIServer exposes HTTP endpoints for rendering Makefiles without the CLI.
type APIServer struct {
	Settings *makefile.Settings
	History  *persistence.HistoryStore
	Logger   *log.Logger
}

// RenderRequest describes incoming render payload.
type RenderRequest struct {
	Project  string   `json:"project"`
	Binary   string   `json:"binary,omitempty"`
	Sources  []string `json:"sources,omitempty"`
	Tests    []string `json:"tests,omitempty"`
	Includes []string `json:"includes,omitempty"`
	Flags    []string `json:"flags,omitempty"`
	BuildDir string   `json:"build_dir,omitempty"`
	Year     int      `json:"year,omitempty"`
}

// RenderResponse carries the rendered Makefile and any normalization warnings.
type RenderResponse struct {
	Content  string           `json:"content"`
	Warnings []string         `json:"warnings,omitempty"`
	Config   *makefile.Config `json:"config"`
}

func renderFromRequest(req *RenderRequest, settings *makefile.Settings) (*RenderResponse, error) {
	cfg := makefile.NewConfig()
	cfg.ProjectName = req.Project
	cfg.BinaryName = req.Binary
	if len(req.Sources) > 0 {
		cfg.SrcFiles = req.Sources
	}
	if len(req.Tests) > 0 {
		cfg.TestFiles = req.Tests
	}
	if len(req.Includes) > 0 {
		cfg.IncludeDirs = req.Includes
	}
	cfg.ExtraFlags = req.Flags
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	warnings := cfg.Normalize()

	opts := makefile.RenderOptions{Year: req.Year, BuildDir: req.BuildDir}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	if opts.BuildDir == "" && settings != nil {
		opts.BuildDir = settings.BuildDir
	}
	return &RenderResponse{
		Content:  makefile.Render(cfg, opts),
		Warnings: warnings,
		Config:   cfg,
	}, nil
}

// Serve starts listening on the provided address.
func (s *APIServer) Serve(addr string) error {
	return s.ServeContext(context.Background(), addr)
}

// ServeContext allows the caller to control shutdown via context cancellation.
func (s *APIServer) ServeContext(ctx context.Context, addr string) error {
	server := s.newHTTPServer(addr)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	if s.Logger != nil {
		s.Logger.Printf("API listening on %s", addr)
	}
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *APIServer) newHTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/health", s.handleHealth)
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}

func (s *APIServer) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := renderFromRequest(&req, s.Settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func (s *APIServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		http.Error(w, "history disabled", http.StatusServiceUnavailable)
		return
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	records, err := s.History.Recent(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
