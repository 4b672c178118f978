package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

var (
	ErrBind  = errors.New("failed to bind to address")
	ErrServe = errors.New("server failed to start")
)

type Server struct {
	e               *echo.Echo
	logger          *log.Logger
	shutdownTimeout time.Duration
}

func New(e *echo.Echo, logger *log.Logger, shutdownTimeout time.Duration) *Server {
	return &Server{e: e, logger: logger, shutdownTimeout: shutdownTimeout}
}

func (s *Server) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrBind, addr, err)
	}
	return ln, nil
}

// Run serves on ln until ctx is done, then drains in-flight requests for at
// most the shutdown timeout. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	s.e.Listener = ln
	addr := ln.Addr().String()

	errCh := make(chan error, 1)
	go func() { errCh <- s.e.Start(addr) }()
	s.logger.Info("server starting", "addr", "http://"+addr)

	select {
	case err := <-errCh:
		return serveErr(err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return serveErr(<-errCh)
}

func serveErr(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrServe, err)
}
