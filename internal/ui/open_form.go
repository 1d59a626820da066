package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/alttext/internal/domain"
)

// imageExtensions limits the file picker to common image files
var imageExtensions = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".svg", ".tif", ".tiff", ".webp"}

// OpenFormResult contains the outcome of the open dialog
type OpenFormResult struct {
	Cancelled bool
	Path      string
}

// OpenForm is a Bubble Tea component for picking an image from disk
type OpenForm struct {
	Completed bool
	form      *huh.Form
	result    OpenFormResult
}

// NewOpenForm creates a file picker rooted at dir (the working directory when empty)
func NewOpenForm(dir string, t domain.Theme) *OpenForm {
	if dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		}
	}

	of := &OpenForm{}
	of.form = huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Image").
				Description("Pick a file, or close this dialog and drop one on the terminal").
				CurrentDirectory(dir).
				AllowedTypes(imageExtensions).
				Picking(true).
				Height(12).
				Value(&of.result.Path),
		),
	).WithTheme(formTheme(t))

	return of
}

func formTheme(t domain.Theme) *huh.Theme {
	if t == domain.ThemeLight {
		return huh.ThemeBase16()
	}
	return huh.ThemeCharm()
}

func (of *OpenForm) Init() tea.Cmd {
	return of.form.Init()
}

func (of *OpenForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			of.result.Cancelled = true
			of.Completed = true
			return of, nil
		}
	}

	form, cmd := of.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		of.form = f
	}

	if of.form.State == huh.StateCompleted {
		of.Completed = true
		return of, nil
	}
	if of.form.State == huh.StateAborted {
		of.result.Cancelled = true
		of.Completed = true
		return of, nil
	}

	return of, cmd
}

func (of *OpenForm) View() string {
	if of.form != nil {
		return of.form.View()
	}
	return ""
}

// Result returns the form result
func (of *OpenForm) Result() OpenFormResult {
	return of.result
}
