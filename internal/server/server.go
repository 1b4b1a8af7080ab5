// Package server exposes the guide pipeline over HTTP: a JSON generation
// endpoint, a liveness probe, and static serving of cached illustrations.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
)

// Server is the HTTP front of the guide service.
type Server struct {
	httpServer *http.Server
	cfg        Config
	pipeline   GuideGenerator
	metrics    *metrics.Metrics
	log        *logger.Logger
}

// NewServer builds the server and its routes.
func NewServer(cfg Config, pipeline GuideGenerator, m *metrics.Metrics, log *logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		metrics:  m,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /howto/json", s.handleHowtoJSON)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /static/images/",
		http.StripPrefix("/static/images/", http.FileServer(http.Dir(cfg.StaticDir))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving in the background. Listen errors after startup are
// logged fatally since the process is useless without its listener.
func (s *Server) Start() {
	s.log.Info("starting http server", nil, map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("http server failed", err, nil)
		}
	}()
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping http server", nil, nil)
	return s.httpServer.Shutdown(ctx)
}
