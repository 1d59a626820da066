// Package server serves the TUI over SSH. Every connection gets its own
// program, workflow and clipboard; the generator and preferences are shared.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
	"github.com/renato0307/alttext/internal/ui"
)

// ShutdownTimeout bounds how long open sessions get to finish on shutdown
const ShutdownTimeout = 30 * time.Second

// SessionFactory builds the model for one SSH session. ctx ends when the
// client disconnects; clipboard writes to the client's terminal.
type SessionFactory func(ctx context.Context, sessionID string, clipboard ports.Clipboard) (*ui.Model, error)

// Config holds the server settings
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	NewSession         SessionFactory
	Port               string
}

// Server is the SSH server for alttext
type Server struct {
	address    string
	newSession SessionFactory
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance. The host key is generated on
// first start if missing.
func NewServer(cfg Config) (*Server, error) {
	if cfg.NewSession == nil {
		return nil, errors.New("session factory is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:    net.JoinHostPort(cfg.Host, cfg.Port),
		newSession: cfg.NewSession,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return authorize(ctx.User(), key, cfg.AuthorizedKeysPath)
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.MiddlewareWithLogger(slog.NewLogLogger(logging.Logger.Handler(), slog.LevelInfo)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Serve runs the server until ctx is cancelled, then shuts it down
// gracefully
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting SSH server", "address", s.address)
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		logging.Logger.Info("SSH server stopped")
		return nil
	})

	return g.Wait()
}
