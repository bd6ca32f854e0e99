// Package server wires the HTTP surface: the generate-excuse API, health
// and debug endpoints, and the static frontend bundle.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ndelaney/excusegen/internal/config"
)

const (
	serviceName    = "excuse-email-tool"
	serviceVersion = "1.0.0"
)

// Completer is the outbound collaborator that turns a prompt into raw
// model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Server is the HTTP server for the excuse email tool.
type Server struct {
	cfg     *config.Config
	llm     Completer
	health  *Health
	metrics *metrics
	router  *gin.Engine
}

// New creates a server with all routes registered.
func New(cfg *config.Config, llm Completer) *Server {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		llm:     llm,
		health:  NewHealth(),
		metrics: &metrics{},
	}
	s.router = s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")
	api.POST("/generate-excuse", s.handleGenerateExcuse)

	for _, path := range []string{"/health", "/healthz", "/ready", "/ping"} {
		r.GET(path, s.handleHealth)
	}
	r.GET("/metrics", s.handleMetrics)
	r.GET("/debug", s.handleDebug)

	s.registerStatic(r)
	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
