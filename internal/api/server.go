// Package api implements the syclop HTTP service: a thin chi router that
// runs demo-scenario solves on demand and, when a MongoDB URI is
// configured, records and replays them via [planrun].
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/latticeplan/syclop/pkg/observability"
	"github.com/latticeplan/syclop/pkg/planrun"
)

// Server holds the dependencies shared by every route handler.
type Server struct {
	Logger   *log.Logger
	Recorder *planrun.Recorder // nil disables run persistence
}

// New constructs a Server. recorder may be nil, in which case POST /plans
// still solves scenarios but responses have no persistent ID and GET
// /plans/{id} always 404s.
func New(logger *log.Logger, recorder *planrun.Recorder) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{Logger: logger, Recorder: recorder}
}

// Router builds the chi route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.handleCreatePlan)
		r.Get("/{id}", s.handleGetPlan)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration.Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
