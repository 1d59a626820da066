package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for optional settings
const (
	DefaultCopyFeedback    = 2 * time.Second
	DefaultErrorClearDelay = 10 * time.Second
	DefaultRequestTimeout  = 120 * time.Second
)

// Clipboard backends
const (
	ClipboardOSC52  = "osc52"
	ClipboardSystem = "system"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g., "copy_tags", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.alttext/settings.json
type Settings struct {
	BaseURL               string            `json:"base_url,omitempty"`
	Clipboard             string            `json:"clipboard,omitempty"`
	CopyFeedbackMS        *int              `json:"copy_feedback_ms,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	ErrorClearDelay       *int              `json:"error_clear_delay,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	Model                 string            `json:"model,omitempty"`
	Provider              string            `json:"provider,omitempty"`
	RequestTimeoutSeconds *int              `json:"request_timeout_seconds,omitempty"`
	StaleResults          string            `json:"stale_results,omitempty"`
	Theme                 string            `json:"theme,omitempty"`
}

// Validate checks enumerated fields and non-negative durations
func (s *Settings) Validate() error {
	switch s.Clipboard {
	case "", ClipboardOSC52, ClipboardSystem:
	default:
		return fmt.Errorf("invalid clipboard %q (want %q or %q)", s.Clipboard, ClipboardSystem, ClipboardOSC52)
	}

	switch s.StaleResults {
	case "", "last-write-wins", "discard":
	default:
		return fmt.Errorf("invalid stale_results %q (want \"last-write-wins\" or \"discard\")", s.StaleResults)
	}

	switch s.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (want \"dark\" or \"light\")", s.Theme)
	}

	for name, v := range map[string]*int{
		"copy_feedback_ms":        s.CopyFeedbackMS,
		"error_clear_delay":       s.ErrorClearDelay,
		"max_log_files":           s.MaxLogFiles,
		"request_timeout_seconds": s.RequestTimeoutSeconds,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	return nil
}

// CopyFeedback returns the copied-indicator window
func (s *Settings) CopyFeedback() time.Duration {
	if s.CopyFeedbackMS == nil || *s.CopyFeedbackMS == 0 {
		return DefaultCopyFeedback
	}
	return time.Duration(*s.CopyFeedbackMS) * time.Millisecond
}

// ErrorClearDuration returns how long UI errors stay visible
func (s *Settings) ErrorClearDuration() time.Duration {
	if s.ErrorClearDelay == nil {
		return DefaultErrorClearDelay
	}
	return time.Duration(*s.ErrorClearDelay) * time.Second
}

// RequestTimeout returns the per-call generation timeout. Zero in the file
// disables the timeout.
func (s *Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutSeconds == nil {
		return DefaultRequestTimeout
	}
	return time.Duration(*s.RequestTimeoutSeconds) * time.Second
}

// LoadSettings loads settings from $ALTTEXT_HOME/settings.json (or ~/.alttext/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $ALTTEXT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
