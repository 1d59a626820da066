package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/alttext/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette is the set of colors a theme renders with
type Palette struct {
	Border    Color
	Copied    Color // "Copied" indicators
	Error     Color
	HelpGroup Color
	Highlight Color // keys and emphasis
	Muted     Color // placeholders and secondary text
	Normal    Color
	Primary   Color // app name, titles
	Secondary Color // section headers
	Selected  Color // background of the selected tag
	Spinner   Color
	Subtle    Color // labels
	Tag       Color // background of tag chips
	Version   Color
}

// Dark is the default palette, tuned for dark terminal backgrounds
var Dark = Palette{
	Border:    "238",
	Copied:    "2",
	Error:     "196",
	HelpGroup: "141",
	Highlight: "255",
	Muted:     "241",
	Normal:    "250",
	Primary:   "99",
	Secondary: "86",
	Selected:  "99",
	Spinner:   "205",
	Subtle:    "245",
	Tag:       "237",
	Version:   "240",
}

// Light is tuned for light terminal backgrounds
var Light = Palette{
	Border:    "250",
	Copied:    "28",
	Error:     "160",
	HelpGroup: "92",
	Highlight: "232",
	Muted:     "244",
	Normal:    "236",
	Primary:   "55",
	Secondary: "30",
	Selected:  "183",
	Spinner:   "162",
	Subtle:    "240",
	Tag:       "254",
	Version:   "246",
}

// PaletteFor returns the palette of t. Unknown themes fall back to Dark.
func PaletteFor(t domain.Theme) Palette {
	if t == domain.ThemeLight {
		return Light
	}
	return Dark
}
