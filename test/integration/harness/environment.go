package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is an isolated ALTTEXT_HOME plus extra variables for one
// test
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an environment with a temporary ALTTEXT_HOME.
// The directory is removed when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns the process environment for the binary: the caller's
// variables minus ALTTEXT_* and provider settings, then ALTTEXT_HOME and
// whatever SetEnv added
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+1+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "ALTTEXT_") || isProviderVar(key) {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "ALTTEXT_HOME="+e.Home)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

func isProviderVar(key string) bool {
	switch key {
	case "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "OLLAMA_HOST", "OPENAI_API_KEY":
		return true
	}
	return false
}

// SettingsPath returns the settings file inside the test home
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes content to the test home's settings.json
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
