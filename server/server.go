// Package server exposes the analysis pipeline over HTTP: upload a
// capture, get back a curl command, generated code, documentation, or
// a live re-execution of the selected request.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/harx-dev/harx/config"
	"github.com/harx-dev/harx/llm"
)

// Server holds the dependencies shared by every handler.
type Server struct {
	logger         *zap.Logger
	selector       llm.Selector
	timeout        time.Duration
	port           int
	allowedOrigins []string
}

// New wires a Server from configuration and a selection backend.
func New(logger *zap.Logger, selector llm.Selector, cfg *config.Config) *Server {
	return &Server{
		logger:         logger,
		selector:       selector,
		timeout:        cfg.RequestTimeout,
		port:           cfg.Port,
		allowedOrigins: cfg.AllowedOrigins,
	}
}

// Router builds the chi mux with CORS, the health check, and the API
// routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.analyzeHAR)
		r.Post("/test-request", s.testRequest)
		r.Post("/generate-code", s.generateCode)
		r.Post("/export-docs", s.exportDocs)
	})

	return r
}

// ListenAndServe blocks serving the API on the configured port.
func (s *Server) ListenAndServe() error {
	addr := ":" + strconv.Itoa(s.port)
	s.logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		return errors.Wrap(err, "serving HTTP")
	}
	return nil
}
