// Package server owns the lifecycle of the inbound HTTP listener:
// construction from configuration, startup, and signal-driven graceful
// shutdown.
package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dmansurov/go-estate-api/internal/config"
	handlerhttp "github.com/dmansurov/go-estate-api/internal/handler/http"
	"github.com/dmansurov/go-estate-api/internal/logger"
)

// Server runs the application's transport layer until a stop signal arrives.
type Server interface {
	// RunServer serves until SIGINT/SIGTERM/SIGQUIT, then shuts down
	// gracefully. It blocks for the lifetime of the process.
	RunServer()

	// Shutdown stops the listener, draining in-flight requests.
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer constructs the HTTP server for the given handler and settings.
func NewServer(handler *handlerhttp.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
