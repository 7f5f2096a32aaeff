// Package server exposes the projection calculators over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/investcalc/calculators/internal/config"
	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/internal/service"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wires the projection service to a gorilla/mux router.
type Server struct {
	svc    *service.ProjectionService
	cfg    config.ServerConfig
	logger *zap.Logger
	router *mux.Router
}

// New creates a server. A nil logger discards log output.
func New(svc *service.ProjectionService, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{svc: svc, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.limitBody)
	api.HandleFunc("/projections", s.handleProject).Methods(http.MethodPost)
	api.HandleFunc("/projections/chart", s.handleChart).Methods(http.MethodPost)
	api.HandleFunc("/sip", s.productHandler(domain.ProductSIP)).Methods(http.MethodPost)
	api.HandleFunc("/mutual-fund", s.productHandler(domain.ProductMutualFund)).Methods(http.MethodPost)
	api.HandleFunc("/fixed-deposit", s.productHandler(domain.ProductFixedDeposit)).Methods(http.MethodPost)
	api.HandleFunc("/products", s.handleProducts).Methods(http.MethodGet)
	return r
}

// Handler returns the root handler including request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.router)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}
