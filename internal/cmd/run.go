package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/logging"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Image   string `arg:"" optional:"" help:"Image to load on start"`
	Dev     bool   `help:"Enable development mode (shows version info in dialogs)"`
	OpenDir string `help:"Directory the open dialog starts in (default: current directory)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting alttext TUI", "image", r.Image)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, err := cli.Container.GenerationService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}

	openDir := config.ExpandPath(r.OpenDir)
	if openDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			openDir = cwd
		}
	}

	wf := cli.Container.NewWorkflow(ctx, generator, cli.Container.LocalClipboard())
	p := tea.NewProgram(
		cli.Container.NewModel(wf, config.ExpandPath(r.Image), openDir, r.Dev),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
