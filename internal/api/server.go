package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/readaloud/internal/config"
	"github.com/dgallion1/readaloud/internal/pipeline"
	"github.com/dgallion1/readaloud/internal/session"
	"github.com/dgallion1/readaloud/internal/tts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for readaloud.
type Server struct {
	router    chi.Router
	sessions  *session.Store
	synth     tts.Synthesizer
	processor *pipeline.Processor
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, synth tts.Synthesizer, processor *pipeline.Processor, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions:  sessions,
		synth:     synth,
		processor: processor,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/documents/upload", s.handleUpload)
		r.Get("/documents/{sessionID}/read/{chunkIndex}", s.handleReadChunk)
		r.Get("/documents/{sessionID}/status", s.handleStatus)

		r.Post("/tts", s.handleSynthesize)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
