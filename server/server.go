// Package server exposes the aligner over HTTP/JSON for visualization
// front-ends and other remote callers.
//
// Routes:
//
//	POST /v1/align  one pair, optional score matrix in the response
//	POST /v1/batch  many pairs, aligned concurrently
//	GET  /healthz  liveness
//	GET  /metrics  Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/metrics"
)

var (
	// ErrAlreadyRunning is returned by Start on a running server.
	ErrAlreadyRunning = errors.New("server: already running")

	// ErrSequenceTooLong rejects an align request above MaxSequenceLength.
	ErrSequenceTooLong = errors.New("server: sequence exceeds maximum length")
)

// Config holds listener and request limits.
type Config struct {
	Addr string
	// Scoring fills fields a request leaves out.
	Scoring align.Config
	// MaxSequenceLength bounds each sequence, in symbols. 0 disables the bound.
	MaxSequenceLength int
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64
	// Parallel bounds concurrent alignments inside one batch request.
	Parallel int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig listens on :8080 with the aligner's default scores and a
// 10 000 symbol bound per sequence.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		Scoring:           align.DefaultConfig(),
		MaxSequenceLength: 10_000,
		MaxBodyBytes:      4 << 20,
		Parallel:          4,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server serves the alignment API.
type Server struct {
	cfg        Config
	metrics    *metrics.Collector
	logger     *slog.Logger
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// New creates a Server. A nil collector gets a fresh one; a nil logger uses slog.Default().
func New(cfg Config, collector *metrics.Collector, logger *slog.Logger) *Server {
	if collector == nil {
		collector = metrics.NewCollector()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	return &Server{cfg: cfg, metrics: collector, logger: logger}
}

// Handler returns the routed handler with request-id and access-log middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/align", s.handleAlign)
	mux.HandleFunc("POST /v1/batch", s.handleBatch)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	return s.withRequestID(s.withAccessLog(mux))
}

// Start listens on cfg.Addr and blocks until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	srv := s.httpServer
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting alignment server", "address", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err, ok := <-errChan:
		s.setStopped()
		if !ok {
			return nil
		}
		return err
	}
}

// Shutdown stops a running server gracefully. It is a no-op when stopped.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	running := s.running
	s.mu.Unlock()
	if !running || srv == nil {
		return nil
	}

	err := srv.Shutdown(ctx)
	s.setStopped()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("alignment server stopped")

	return nil
}

func (s *Server) setStopped() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
