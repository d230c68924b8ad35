package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/state"
	"github.com/meltforce/liftlog/internal/timer"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *state.Service
	rest   *timer.Rest
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. Logging a main-lift
// weight starts the rest timer. When apiKey is empty, writes are open.
func New(svc *state.Service, rest *timer.Rest, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		rest:   rest,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	svc.OnSetLogged(rest.Start)
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/program", s.handleProgram)
		r.Get("/weeks/{week}", s.handleWeek)
		r.Get("/weeks/{week}/days/{day}", s.handleSession)
		r.Get("/position", s.handlePosition)
		r.Get("/one-rm", s.handleOneRM)
		r.Get("/progress", s.handleProgress)
		r.Get("/timer", s.handleTimer)

		// Writes (API key required when configured)
		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Put("/position", s.handleSetPosition)
			r.Put("/one-rm", s.handleSetOneRM)
			r.Put("/weeks/{week}/days/{day}/main/{row}", s.handleLogMain)
			r.Put("/weeks/{week}/days/{day}/accessories/{idx}", s.handleLogAccessory)
			r.Post("/timer/start", s.handleTimerAction(s.rest.Start))
			r.Post("/timer/stop", s.handleTimerAction(s.rest.Stop))
			r.Post("/timer/reset", s.handleTimerAction(s.rest.Reset))
			r.Get("/state/export", s.handleExport)
			r.Post("/state/import", s.handleImport)
		})
	})
}

// MountMCP serves an MCP transport at /mcp. A single JSON-RPC endpoint
// carries both reads and writes, so the whole endpoint sits behind the API
// key when one is configured.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Handle("/mcp", h)
	})
}
