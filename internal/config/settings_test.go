package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("ALTTEXT_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.Equal(t, DefaultCopyFeedback, settings.CopyFeedback())
	assert.Equal(t, DefaultRequestTimeout, settings.RequestTimeout())
	assert.Equal(t, DefaultErrorClearDelay, settings.ErrorClearDuration())
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ALTTEXT_HOME", home)
	content := `{
		"provider": "ollama",
		"model": "llava",
		"copy_feedback_ms": 500,
		"request_timeout_seconds": 0,
		"stale_results": "discard",
		"clipboard": "osc52",
		"keys": {"copy_tags": "T", "help": ["h", "?"]}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "ollama", settings.Provider)
	assert.Equal(t, "llava", settings.Model)
	assert.Equal(t, 500*time.Millisecond, settings.CopyFeedback())
	assert.Equal(t, time.Duration(0), settings.RequestTimeout())
	assert.Equal(t, "discard", settings.StaleResults)
	assert.Equal(t, ClipboardOSC52, settings.Clipboard)
	assert.Equal(t, KeyBindingValue{"T"}, settings.Keys["copy_tags"])
	assert.Equal(t, KeyBindingValue{"h", "?"}, settings.Keys["help"])
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"provider":`},
		{"bad clipboard", `{"clipboard": "x11"}`},
		{"bad stale policy", `{"stale_results": "ignore"}`},
		{"bad theme", `{"theme": "solarized"}`},
		{"negative window", `{"copy_feedback_ms": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("ALTTEXT_HOME", home)
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(tt.content), 0644))

			_, err := LoadSettings()

			assert.Error(t, err)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "new")
	t.Setenv("ALTTEXT_HOME", home)

	saved := &Settings{Provider: "gemini", CopyFeedbackMS: intPtr(1500)}
	require.NoError(t, SaveSettings(saved))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"copy_tags", "help", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"ok", KeyBindingsConfig{"help": {"h", "?"}, "quit": {"q"}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"a"}}, "unknown key binding"},
		{"empty key", KeyBindingsConfig{"help": {""}}, "empty value"},
		{"duplicate key", KeyBindingsConfig{"help": {"q"}, "quit": {"q"}}, "assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestKeyBindingValue_MarshalJSON(t *testing.T) {
	single, err := json.Marshal(KeyBindingValue{"q"})
	require.NoError(t, err)
	assert.Equal(t, `"q"`, string(single))

	multi, err := json.Marshal(KeyBindingValue{"h", "?"})
	require.NoError(t, err)
	assert.Equal(t, `["h","?"]`, string(multi))
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{
		"base_url", "clipboard", "copy_feedback_ms", "debug", "error_clear_delay", "keys",
		"max_log_files", "model", "provider", "request_timeout_seconds", "stale_results", "theme",
	} {
		assert.Contains(t, example, name)
		assert.NotNil(t, example[name], name)
	}
	assert.Equal(t, 2000, example["copy_feedback_ms"])
}

func TestGetHome(t *testing.T) {
	t.Setenv("ALTTEXT_HOME", "/tmp/alttext-test")
	assert.Equal(t, "/tmp/alttext-test", GetHome())
	assert.Equal(t, "/tmp/alttext-test/settings.json", GetSettingsPath())
	assert.Equal(t, "/tmp/alttext-test/state.db", GetDBPath())

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "pics"), ExpandPath("~/pics"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}
