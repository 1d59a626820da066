package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	styles      theme.Styles
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component. Groups list only the
// actions available in the current context.
func NewHelpScreen(keys *KeyMap, styles theme.Styles, hasImage bool) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, styles, hasImage),
		keys:     keys,
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

// bindingsByAction maps domain action names to their bindings
func bindingsByAction(keys *KeyMap) map[string]key.Binding {
	return map[string]key.Binding{
		"add_tag":          keys.Tags.Add,
		"copy_description": keys.Results.CopyDescription,
		"copy_tags":        keys.Results.CopyTags,
		"edit_description": keys.Results.EditDescription,
		"edit_tag":         keys.Tags.Edit,
		"generate":         keys.Results.Generate,
		"help":             keys.Application.Help,
		"open":             keys.Application.Open,
		"quit":             keys.Application.Quit,
		"remove_tag":       keys.Tags.Remove,
		"reset":            keys.Application.Reset,
		"theme":            keys.Application.Theme,
	}
}

func buildHelpContent(keys *KeyMap, styles theme.Styles, hasImage bool) string {
	var b strings.Builder
	bindings := bindingsByAction(keys)

	b.WriteString(styles.HelpGroup.Render("Actions") + "\n")
	for _, action := range domain.GetActionsForContext(hasImage) {
		binding, ok := bindings[action.Name]
		if !ok {
			continue
		}
		b.WriteString(renderShortcut(styles, binding.Help().Key, action.Description))
	}

	b.WriteString("\n" + styles.HelpGroup.Render("Tags") + "\n")
	b.WriteString(renderBinding(styles, keys.Tags.Prev))
	b.WriteString(renderBinding(styles, keys.Tags.Next))
	b.WriteString(renderShortcut(styles, "enter", "save tag (while editing)"))
	b.WriteString(renderShortcut(styles, "esc", "cancel edit"))

	b.WriteString("\n" + styles.HelpGroup.Render("Images") + "\n")
	b.WriteString(renderShortcut(styles, "drop / paste path", "load an image file"))

	b.WriteString("\n" + styles.HelpGroup.Render("Application") + "\n")
	b.WriteString(renderBinding(styles, keys.Application.ForceQuit))

	return b.String()
}

func renderShortcut(styles theme.Styles, keys, description string) string {
	return styles.HelpKey.Render(keys) + styles.HelpDesc.Render(description) + "\n"
}

func renderBinding(styles theme.Styles, binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(styles, help.Key, help.Desc)
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := h.styles.HelpStyle.Render("Press esc, q, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
