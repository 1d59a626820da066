package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/alttext/internal/domain"
)

// Styles holds every lipgloss style the UI renders with. It is rebuilt when
// the theme changes.
type Styles struct {
	Theme domain.Theme

	// Dialog header
	AppName  lipgloss.Style
	Subtitle lipgloss.Style
	Tagline  lipgloss.Style
	Version  lipgloss.Style

	// Main view
	Copied      lipgloss.Style
	Description lipgloss.Style
	DropZone    lipgloss.Style
	Error       lipgloss.Style
	ImageInfo   lipgloss.Style
	Panel       lipgloss.Style
	Placeholder lipgloss.Style
	Section     lipgloss.Style
	Spinner     lipgloss.Style
	Tag         lipgloss.Style
	TagSelected lipgloss.Style
	Title       lipgloss.Style

	// Footer and help screen
	HelpDesc     lipgloss.Style
	HelpGroup    lipgloss.Style
	HelpKey      lipgloss.Style
	HelpLabel    lipgloss.Style
	HelpShortcut lipgloss.Style
	HelpStyle    lipgloss.Style
}

// NewStyles builds the styles of t
func NewStyles(t domain.Theme) Styles {
	p := PaletteFor(t)
	if _, ok := domain.ParseTheme(string(t)); !ok {
		t = domain.ThemeDark
	}

	return Styles{
		Theme: t,

		AppName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Tagline: lipgloss.NewStyle().
			Foreground(p.Normal),
		Version: lipgloss.NewStyle().
			Foreground(p.Version),

		Copied: lipgloss.NewStyle().
			Foreground(p.Copied).
			Bold(true),
		Description: lipgloss.NewStyle().
			Foreground(p.Normal),
		DropZone: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.Muted).
			Padding(1, 2),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		ImageInfo: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Spinner),
		Tag: lipgloss.NewStyle().
			Foreground(p.Normal).
			Background(p.Tag).
			Padding(0, 1),
		TagSelected: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Background(p.Selected).
			Bold(true).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(1, 0),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Subtle),
		HelpGroup: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.HelpGroup).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true).
			Width(25),
		HelpLabel: lipgloss.NewStyle().
			Foreground(p.Subtle),
		HelpShortcut: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		HelpStyle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(1, 0),
	}
}
