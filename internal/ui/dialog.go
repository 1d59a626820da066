package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/alttext/internal/theme"
)

// Dialog wraps any tea.Model content and prepends the application header
// with a title to its view
type Dialog struct {
	content tea.Model
	devMode bool
	styles  theme.Styles
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, styles theme.Styles, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		styles:  styles,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header followed by the wrapped content
func (d *Dialog) View() string {
	return renderHeader(d.styles, d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion.
func (d *Dialog) Content() tea.Model {
	return d.content
}
