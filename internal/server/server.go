package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Start binds the listen address and begins serving. It returns once the
// listener is bound; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error(ctx, "Server error: %v", err)
		}
	}()

	s.logger.Info(ctx, "HTTP server started on %s", s.httpServer.Addr)
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info(ctx, "HTTP server stopped")
	return nil
}
