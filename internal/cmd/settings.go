package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	adapterllm "github.com/renato0307/alttext/internal/adapters/llm"
	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/workflow"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	return writeSettingsMeta(os.Stdout, s.Format, config.GetSettingsPath(), config.GetSettingsExample())
}

func writeSettingsMeta(out io.Writer, format, settingsFile string, example map[string]any) error {
	if format == "json" {
		return writeJSON(out, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range sortedKeys(example) {
		fmt.Fprintf(w, "%s\t%s\n", key, formatSettingValue(example[key]))
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure alttext.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsShowCmd displays the values in effect after merging flags,
// environment and settings.json
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	return writeEffectiveSettings(os.Stdout, s.Format, effectiveSettings(cli))
}

// effectiveSettings lists every setting with the value alttext will use
func effectiveSettings(cli *CLI) map[string]any {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	provider := cli.Provider
	if provider == "" {
		provider = adapterllm.DefaultProvider
	}
	model := cli.Model
	if model == "" {
		model = adapterllm.DefaultModel(provider)
	}

	clipboard := settings.Clipboard
	if clipboard == "" {
		clipboard = config.ClipboardSystem
	}
	staleResults := settings.StaleResults
	if staleResults == "" {
		staleResults = string(workflow.StaleLastWriteWins)
	}
	theme := settings.Theme
	if theme == "" {
		theme = "dark"
	}

	return map[string]any{
		"base_url":                cli.BaseURL,
		"clipboard":               clipboard,
		"copy_feedback_ms":        settings.CopyFeedback().Milliseconds(),
		"debug":                   cli.Debug,
		"error_clear_delay":       int(settings.ErrorClearDuration().Seconds()),
		"keys":                    settings.Keys,
		"max_log_files":           cli.MaxLogFiles,
		"model":                   model,
		"provider":                provider,
		"request_timeout_seconds": int(settings.RequestTimeout().Seconds()),
		"stale_results":           staleResults,
		"theme":                   theme,
	}
}

func writeEffectiveSettings(out io.Writer, format string, values map[string]any) error {
	if format == "json" {
		return writeJSON(out, values)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Setting\tValue")
	fmt.Fprintln(w, "───────\t─────")
	for _, key := range sortedKeys(values) {
		value := formatSettingValue(values[key])
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	return w.Flush()
}

func formatSettingValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int, int64:
		return fmt.Sprintf("%d", v)
	case config.KeyBindingsConfig:
		if len(v) == 0 {
			return ""
		}
		data, _ := json.Marshal(v)
		return string(data)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
