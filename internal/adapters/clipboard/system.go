package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/renato0307/alttext/internal/ports"
)

// System writes to the local OS clipboard (pbcopy, xclip, xsel, wl-copy or
// the Windows API)
type System struct {
	write func(string) error
}

var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a System clipboard
func NewSystem() *System {
	return &System{write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found
func Available() bool {
	return !clipboard.Unsupported
}

// WriteText implements ports.Clipboard
func (s *System) WriteText(text string) error {
	if err := s.write(text); err != nil {
		return fmt.Errorf("failed to write to system clipboard: %w", err)
	}
	return nil
}
