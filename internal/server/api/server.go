// Package api exposes the REST surface of the Lu Estilo API over gin:
// routing, request/response schemas, the authentication middleware, and the
// mapping from domain errors to HTTP statuses.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leoAraujo20/lu-estilo-api/internal/logging"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/config"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address       string
	logger        logging.Logger
	users         *services.UserService
	clients       *services.ClientService
	products      *services.ProductService
	orders        *services.OrderService
	jwtSecret     []byte
	signingMethod jwt.SigningMethod
}

func NewServer(l logging.Logger, us *services.UserService, cs *services.ClientService, ps *services.ProductService, os *services.OrderService, cfg *config.Config) (*Server, error) {
	method, err := auth.SigningMethod(cfg.SigningAlgorithm)
	if err != nil {
		return nil, err
	}

	return &Server{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "http_server"),
		users:         us,
		clients:       cs,
		products:      ps,
		orders:        os,
		jwtSecret:     []byte(cfg.SecretKey),
		signingMethod: method,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
