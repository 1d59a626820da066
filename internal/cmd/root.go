package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	BaseURL     string           `help:"Endpoint of the generation provider" env:"ALTTEXT_BASE_URL"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"ALTTEXT_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"ALTTEXT_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"ALTTEXT_MAX_LOG_FILES"`
	Model       string           `help:"Model used for descriptions and tags (default depends on provider)" env:"ALTTEXT_MODEL"`
	Provider    string           `help:"Generation provider: anthropic, gemini, ollama or openai" env:"ALTTEXT_PROVIDER"`

	Run      RunCmd      `cmd:"" help:"Start the alttext TUI (default)" default:"withargs"`
	Describe DescribeCmd `cmd:"describe" help:"Describe and tag an image without the TUI"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, show)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	c.applySettings()

	if c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "file", logFilePath)
	}

	// The container's storage adapter logs through logging.Logger, so it is
	// created after Initialize
	container, err := NewContainer(ContainerOptions{
		BaseURL:  c.BaseURL,
		Model:    c.Model,
		Provider: c.Provider,
		Settings: c.settings,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills every flag still at its default, and not set through
// the environment, from settings.json
func (c *CLI) applySettings() {
	s := c.settings

	if c.Provider == "" && s.Provider != "" {
		c.Provider = s.Provider
	}
	if c.Model == "" && s.Model != "" {
		c.Model = s.Model
	}
	if c.BaseURL == "" && s.BaseURL != "" {
		c.BaseURL = s.BaseURL
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && s.MaxLogFiles != nil {
		if _, hasEnv := os.LookupEnv("ALTTEXT_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = *s.MaxLogFiles
		}
	}

	if !c.Debug && s.Debug != nil && *s.Debug {
		if _, hasEnv := os.LookupEnv("ALTTEXT_DEBUG"); !hasEnv {
			c.Debug = true
		}
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
