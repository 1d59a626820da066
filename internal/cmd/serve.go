package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
	"github.com/renato0307/alttext/internal/server"
	"github.com/renato0307/alttext/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host           string `help:"Host to bind to" default:"localhost" env:"ALTTEXT_SSH_HOST"`
	Port           string `help:"Port to listen on" default:"23234" env:"ALTTEXT_SSH_PORT"`
	AuthorizedKeys string `help:"authorized_keys file used to authenticate clients" default:"~/.ssh/authorized_keys"`
	Dev            bool   `help:"Enable development mode (shows version info in dialogs)"`
	OpenDir        string `help:"Directory the open dialog starts in (default: current directory)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := cli.Container.GenerationService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}

	openDir := config.ExpandPath(s.OpenDir)
	if openDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			openDir = cwd
		}
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
		NewSession: func(sessCtx context.Context, sessionID string, clip ports.Clipboard) (*ui.Model, error) {
			logging.Logger.Debug("Creating session workflow", "session_id", sessionID)
			wf := cli.Container.NewWorkflow(sessCtx, generator, clip)
			return cli.Container.NewModel(wf, "", openDir, s.Dev), nil
		},
		Port: s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logging.Logger.Info("Starting alttext SSH server", "address", srv.Address())
	fmt.Printf("Serving alttext on ssh://%s\n", srv.Address())

	return srv.Serve(ctx)
}
