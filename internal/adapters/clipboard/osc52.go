package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/renato0307/alttext/internal/ports"
)

// OSC52 asks the terminal to set the clipboard using the OSC 52 escape
// sequence. It works over SSH, where the process has no clipboard of its own.
type OSC52 struct {
	out  io.Writer
	term string
	tmux bool
}

var _ ports.Clipboard = (*OSC52)(nil)

// NewOSC52 creates an OSC52 clipboard writing to out. term is the client's
// TERM value, used to wrap the sequence for tmux and screen.
func NewOSC52(out io.Writer, term string) *OSC52 {
	return &OSC52{out: out, term: term, tmux: strings.HasPrefix(term, "tmux")}
}

// NewOSC52Stderr creates an OSC52 clipboard for the local terminal. Running
// inside tmux is detected from the environment.
func NewOSC52Stderr() *OSC52 {
	c := NewOSC52(os.Stderr, os.Getenv("TERM"))
	c.tmux = c.tmux || os.Getenv("TMUX") != ""
	return c
}

// WriteText implements ports.Clipboard
func (c *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	switch {
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	case c.tmux:
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
