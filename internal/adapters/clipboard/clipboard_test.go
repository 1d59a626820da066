package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WriteText(t *testing.T) {
	t.Setenv("TMUX", "")

	tests := []struct {
		name       string
		term       string
		wantPrefix string
	}{
		{"plain terminal", "xterm-256color", "\x1b]52;c;"},
		{"tmux", "tmux-256color", "\x1bPtmux;\x1b\x1b]52;c;"},
		{"screen", "screen", "\x1bP\x1b]52;c;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cb := NewOSC52(&buf, tt.term)

			require.NoError(t, cb.WriteText("cat, mat"))

			out := buf.String()
			assert.Contains(t, out, tt.wantPrefix)
			assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("cat, mat")))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestOSC52_WriteError(t *testing.T) {
	cb := NewOSC52(failingWriter{}, "xterm")

	assert.Error(t, cb.WriteText("cat"))
}

func TestSystem_WrapsErrors(t *testing.T) {
	var got string
	ok := &System{write: func(s string) error { got = s; return nil }}
	require.NoError(t, ok.WriteText("A cat"))
	assert.Equal(t, "A cat", got)

	failing := &System{write: func(string) error { return errors.New("no xclip") }}
	err := failing.WriteText("A cat")
	assert.ErrorContains(t, err, "no xclip")
}

func TestNewOSC52Stderr_DetectsTmux(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	assert.True(t, NewOSC52Stderr().tmux)

	t.Setenv("TMUX", "")
	assert.False(t, NewOSC52Stderr().tmux)
}
