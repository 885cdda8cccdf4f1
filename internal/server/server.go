// Package server exposes the style catalog and the blend computation over
// HTTP.
//
// Endpoints:
//
//	GET /api/styles          full catalog document, default entry included
//	GET /api/weights?x=&y=   distribution for a point in disk coordinates
//	GET /health              {"status":"healthy"}
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/catalog"
	"github.com/matzehuels/stylewheel/pkg/errors"
	"github.com/matzehuels/stylewheel/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

// Server serves one loaded catalog. It is read-only after construction and
// safe for concurrent requests.
type Server struct {
	disk   blend.Disk
	params blend.Params
	loaded catalog.Loaded
	logger *log.Logger
}

// New creates a server for the given geometry and catalog.
func New(disk blend.Disk, params blend.Params, loaded catalog.Loaded, logger *log.Logger) (*Server, error) {
	if err := disk.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if loaded.Catalog == nil {
		loaded.Catalog = catalog.Catalog{}
	}
	return &Server{
		disk:   disk,
		params: params,
		loaded: loaded,
		logger: logger,
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/styles", s.handleStyles)
		r.Get("/weights", s.handleWeights)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("catalog server listening", "addr", addr, "styles", len(s.loaded.Styles))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("catalog server stopped")
	return nil
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path, middleware.GetReqID(ctx))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.loaded.Catalog)
}

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, err := parseCoord(q.Get("x"), "x")
	if err != nil {
		writeError(w, err)
		return
	}
	y, err := parseCoord(q.Get("y"), "y")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.loaded.Evaluate(blend.Point{X: x, Y: y}, s.disk, s.params))
}

func parseCoord(raw, name string) (float64, error) {
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "query parameter %q is not a number", name)
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidInput, name, v); err != nil {
		return 0, err
	}
	return v, nil
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorBody{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
