package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	return writeKeyBindings(os.Stdout, s.Format, custom)
}

func writeKeyBindings(out io.Writer, format string, custom config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	if format == "json" {
		result := make(map[string]map[string]any, len(names))
		for _, name := range names {
			entry := map[string]any{
				"default": defaults[name],
				"help":    ui.GetKeyDefinition(name).Help,
			}
			if keys, ok := custom[name]; ok && len(keys) > 0 {
				entry["custom"] = keys
			}
			result[name] = entry
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, name := range names {
		customStr := "-"
		if keys, ok := custom[name]; ok && len(keys) > 0 {
			customStr = strings.Join(keys, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			name, strings.Join(defaults[name], ", "), customStr, ui.GetKeyDefinition(name).Help)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'alttext settings keys set <name> <value>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., copy_tags, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., c, ctrl+s, or comma-separated for multiple: right,l)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	values, err := setKeyBinding(settings, s.Key, s.Value)
	if err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// setKeyBinding validates and stores a binding in settings
func setKeyBinding(settings *config.Settings, name, value string) ([]string, error) {
	if !ui.IsValidKeyName(name) {
		return nil, fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(value)
	if len(values) == 0 {
		return nil, errors.New("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", name, "values", values)

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	previous, hadPrevious := settings.Keys[name]
	settings.Keys[name] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		if hadPrevious {
			settings.Keys[name] = previous
		} else {
			delete(settings.Keys, name)
		}
		return nil, fmt.Errorf("conflict: %w", err)
	}

	return values, nil
}

// parseKeyValues splits a comma-separated binding, dropping blanks
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
