package cmd

import (
	"context"
	"io"
	"sync"

	adapterclipboard "github.com/renato0307/alttext/internal/adapters/clipboard"
	adapterfiles "github.com/renato0307/alttext/internal/adapters/files"
	adapterllm "github.com/renato0307/alttext/internal/adapters/llm"
	adapterstorage "github.com/renato0307/alttext/internal/adapters/storage"
	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
	"github.com/renato0307/alttext/internal/services"
	"github.com/renato0307/alttext/internal/ui"
	"github.com/renato0307/alttext/internal/workflow"
)

// ContainerOptions carries the already merged flag, env and settings values
type ContainerOptions struct {
	BaseURL  string
	Model    string
	Provider string
	Settings *config.Settings
}

// Container holds all dependencies for the application
type Container struct {
	Loader            *adapterfiles.Loader
	PreferenceService *services.PreferenceService

	llmConfig   adapterllm.Config
	settings    *config.Settings
	stalePolicy workflow.StalePolicy

	// Built on first use so that settings commands work without provider
	// credentials
	generatorOnce sync.Once
	generator     *services.GenerationService
	generatorErr  error
	visionModel   ports.VisionModel

	// Internal - for cleanup only
	preferenceRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}

	stalePolicy, err := workflow.ParseStalePolicy(settings.StaleResults)
	if err != nil {
		return nil, err
	}

	preferenceRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	fallbackTheme, ok := domain.ParseTheme(settings.Theme)
	if !ok {
		fallbackTheme = domain.ThemeDark
	}

	return &Container{
		Loader:            adapterfiles.NewLoader(),
		PreferenceService: services.NewPreferenceService(preferenceRepo, fallbackTheme),
		llmConfig: adapterllm.Config{
			BaseURL:  opts.BaseURL,
			Model:    opts.Model,
			Provider: opts.Provider,
		},
		settings:       settings,
		stalePolicy:    stalePolicy,
		preferenceRepo: preferenceRepo,
	}, nil
}

// GenerationService returns the generation client for the configured
// provider, creating it on the first call
func (c *Container) GenerationService(ctx context.Context) (*services.GenerationService, error) {
	c.generatorOnce.Do(func() {
		model, err := adapterllm.NewVisionModel(ctx, c.llmConfig)
		if err != nil {
			c.generatorErr = err
			return
		}
		logging.Logger.Info("Generation provider ready", "model", model.Name())
		c.visionModel = model
		c.generator = services.NewGenerationService(model)
	})
	return c.generator, c.generatorErr
}

// LocalClipboard returns the clipboard for a program running in the local
// terminal
func (c *Container) LocalClipboard() ports.Clipboard {
	if c.settings.Clipboard == config.ClipboardOSC52 || !adapterclipboard.Available() {
		logging.Logger.Debug("Using OSC52 clipboard")
		return adapterclipboard.NewOSC52Stderr()
	}
	return adapterclipboard.NewSystem()
}

// NewWorkflow creates a workflow bound to ctx that copies through clip
func (c *Container) NewWorkflow(ctx context.Context, generator ports.Generator, clip ports.Clipboard) *workflow.Workflow {
	return workflow.New(workflow.Config{
		Clipboard:      clip,
		Context:        ctx,
		FeedbackWindow: c.settings.CopyFeedback(),
		Generator:      generator,
		RequestTimeout: c.settings.RequestTimeout(),
		StalePolicy:    c.stalePolicy,
	})
}

// NewModel creates the root TUI model around wf
func (c *Container) NewModel(wf *workflow.Workflow, initialPath, openDir string, devMode bool) *ui.Model {
	return ui.NewModel(ui.ModelOptions{
		DevMode:         devMode,
		ErrorClearDelay: c.settings.ErrorClearDuration(),
		InitialPath:     initialPath,
		Keys:            c.settings.Keys,
		Loader:          c.Loader,
		OpenDir:         openDir,
		Preferences:     c.PreferenceService,
		Workflow:        wf,
	})
}

// Settings returns the loaded settings file
func (c *Container) Settings() *config.Settings {
	return c.settings
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if closer, ok := c.visionModel.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logging.Logger.Warn("Failed to close generation client", "error", err)
		}
	}
	if c.preferenceRepo != nil {
		return c.preferenceRepo.Close()
	}
	return nil
}
