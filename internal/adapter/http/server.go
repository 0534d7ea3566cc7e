package adapthttp

import (
	"context"
	"net/http"

	"fitcoach/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// DefaultCORSOrigins allows any http or https origin.
var DefaultCORSOrigins = []string{"https://*", "http://*"}

// Services groups the application services the HTTP adapter drives.
type Services struct {
	Plans    *app.PlanService
	Coach    *app.CoachService
	Progress *app.ProgressService
	Daily    *app.DailyPlanService
	XP       *app.XPService
}

// Prober reports the text generation provider's configuration and checks
// that it can be reached.
type Prober interface {
	Region() string
	ModelID() string
	Ping(ctx context.Context) (int, error)
}

// Pinger checks store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc     Services
	probe   Prober
	store   Pinger
	log     zerolog.Logger
	origins []string
}

// New creates a Server wired to the given application services.
func New(svc Services, probe Prober, store Pinger, log zerolog.Logger) *Server {
	return &Server{svc: svc, probe: probe, store: store, log: log, origins: DefaultCORSOrigins}
}

// WithCORSOrigins replaces the allowed CORS origins.
func (s *Server) WithCORSOrigins(origins []string) *Server {
	if len(origins) > 0 {
		s.origins = origins
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogging)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-plan", s.handleGeneratePlan)
		r.Post("/get-plans", s.handleGetPlans)

		r.Post("/track-progress", s.handleTrackProgress)
		r.Post("/get-progress", s.handleGetProgress)
		r.Post("/daily-checkin", s.handleDailyCheckin)

		r.Post("/chat", s.handleChat)

		r.Post("/get-daily-plan", s.handleGetDailyPlan)
		r.Post("/get-daily-history", s.handleGetDailyHistory)

		r.Post("/get-xp", s.handleGetXP)

		r.Get("/test-bedrock", s.handleTestBedrock)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logError(r, err, "store ping failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
