package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/renato0307/alttext/internal/config"
	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/feedback"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
	"github.com/renato0307/alttext/internal/services"
	"github.com/renato0307/alttext/internal/tagedit"
	"github.com/renato0307/alttext/internal/theme"
	"github.com/renato0307/alttext/internal/workflow"
)

type uiState int

const (
	stateMain uiState = iota
	stateAddingTag
	stateEditingDescription
	stateEditingTag
	stateHelp
	stateOpening
)

// ModelOptions holds the collaborators and settings of a Model
type ModelOptions struct {
	DevMode         bool
	ErrorClearDelay time.Duration
	InitialPath     string // loaded on Init when set
	Keys            config.KeyBindingsConfig
	Loader          ports.FileLoader
	OpenDir         string // where the open dialog starts
	Preferences     *services.PreferenceService
	Workflow        *workflow.Workflow
}

// Model is the root Bubble Tea model. It renders the workflow's session and
// turns key presses into workflow and tag editor operations.
type Model struct {
	description  textarea.Model
	devMode      bool
	draftInput   textinput.Model
	errorManager *ErrorManager
	height       int
	helpScreen   *Dialog
	initialPath  string
	keys         KeyMap
	loader       ports.FileLoader
	openDir      string
	openForm     *Dialog
	preferences  *services.PreferenceService
	selectedTag  int
	spinner      spinner.Model
	spinning     bool
	state        uiState
	styles       theme.Styles
	tagEditor    *tagedit.Editor
	tagInput     textinput.Model
	tagsRevision uint64
	width        int
	workflow     *workflow.Workflow
}

func NewModel(opts ModelOptions) *Model {
	styles := theme.NewStyles(opts.Preferences.Theme(context.Background()))

	description := textarea.New()
	description.Placeholder = "Describe the image..."
	description.ShowLineNumbers = false
	description.SetHeight(4)

	draftInput := textinput.New()
	draftInput.Placeholder = "new tag"
	draftInput.Prompt = "+ "

	tagInput := textinput.New()
	tagInput.Prompt = ""

	return &Model{
		description:  description,
		devMode:      opts.DevMode,
		draftInput:   draftInput,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		initialPath:  opts.InitialPath,
		keys:         NewKeyMap(opts.Keys),
		loader:       opts.Loader,
		openDir:      opts.OpenDir,
		preferences:  opts.Preferences,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		state:        stateMain,
		styles:       styles,
		tagEditor:    tagedit.New(),
		tagInput:     tagInput,
		tagsRevision: opts.Workflow.TagsRevision(),
		workflow:     opts.Workflow,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.initialPath != "" {
		return m.loadFile(m.initialPath)
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.description.SetWidth(max(msg.Width-6, 20))

	case workflow.DescriptionReadyMsg, workflow.TagsReadyMsg, feedback.FiredMsg:
		cmd := m.workflow.Update(msg)
		m.syncWithWorkflow()
		return m, cmd

	case workflow.CopyFailedMsg:
		return m, m.errorManager.SetError(fmt.Errorf("failed to copy %s: %w", msg.Target, msg.Err))

	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadFileMsg:
		return m, m.loadFile(msg.Path)

	case fileLoadedMsg:
		return m, m.handleFileLoaded(msg)
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateAddingTag:
		return m.updateAddingTag(msg)
	case stateEditingDescription:
		return m.updateEditingDescription(msg)
	case stateEditingTag:
		return m.updateEditingTag(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateOpening:
		return m.updateOpening(msg)
	}
	return m, nil
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Paste {
		return m, m.handlePaste(string(keyMsg.Runes))
	}

	session := m.workflow.Session()

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, m.showHelp()

	case key.Matches(keyMsg, m.keys.Application.Open):
		return m, m.showOpen()

	case key.Matches(keyMsg, m.keys.Application.Reset):
		m.workflow.Reset()
		m.syncWithWorkflow()
		return m, nil

	case key.Matches(keyMsg, m.keys.Application.Theme):
		return m, m.toggleTheme()

	case key.Matches(keyMsg, m.keys.Results.Generate):
		return m, m.generate()

	case key.Matches(keyMsg, m.keys.Results.CopyDescription):
		return m, m.workflow.CopyDescription()

	case key.Matches(keyMsg, m.keys.Results.CopyTags):
		return m, m.workflow.CopyTags()

	case key.Matches(keyMsg, m.keys.Results.EditDescription):
		if !m.workflow.CanEditDescription() {
			return m, nil
		}
		m.description.SetValue(session.Description)
		m.state = stateEditingDescription
		return m, m.description.Focus()
	}

	if session.BusyTags {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Tags.Add):
		m.draftInput.SetValue(m.tagEditor.Draft())
		m.draftInput.CursorEnd()
		m.state = stateAddingTag
		return m, m.draftInput.Focus()

	case key.Matches(keyMsg, m.keys.Tags.Edit):
		if err := m.tagEditor.BeginEdit(session.Tags, m.selectedTag); err != nil {
			return m, nil
		}
		m.tagInput.SetValue(m.tagEditor.EditingValue())
		m.tagInput.CursorEnd()
		m.state = stateEditingTag
		return m, m.tagInput.Focus()

	case key.Matches(keyMsg, m.keys.Tags.Remove):
		tags, err := m.tagEditor.RemoveTag(session.Tags, m.selectedTag)
		if err != nil {
			return m, nil
		}
		m.workflow.SetTags(tags)
		m.clampSelection()

	case key.Matches(keyMsg, m.keys.Tags.Next):
		if m.selectedTag < len(session.Tags)-1 {
			m.selectedTag++
		}

	case key.Matches(keyMsg, m.keys.Tags.Prev):
		if m.selectedTag > 0 {
			m.selectedTag--
		}
	}

	return m, nil
}

func (m *Model) updateAddingTag(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.leaveTagInput()
			return m, nil
		case tea.KeyEnter:
			tags, added := m.tagEditor.AddDraft(m.workflow.Session().Tags)
			if added {
				m.workflow.SetTags(tags)
				m.draftInput.SetValue("")
				m.selectedTag = len(tags) - 1
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	m.tagEditor.UpdateDraft(m.draftInput.Value())
	return m, cmd
}

func (m *Model) updateEditingTag(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.tagEditor.CancelEdit()
			m.leaveTagInput()
			return m, nil
		case tea.KeyEnter:
			if tags, applied := m.tagEditor.CommitEdit(m.workflow.Session().Tags); applied {
				m.workflow.SetTags(tags)
			}
			m.leaveTagInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tagInput, cmd = m.tagInput.Update(msg)
	if err := m.tagEditor.UpdateEditingValue(m.tagInput.Value()); err != nil {
		m.leaveTagInput()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateEditingDescription(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.leaveDescription()
		return m, nil
	}

	if !m.workflow.CanEditDescription() {
		m.leaveDescription()
		return m, nil
	}

	var cmd tea.Cmd
	m.description, cmd = m.description.Update(msg)
	m.workflow.EditDescription(m.description.Value())
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateMain
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateOpening(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.openForm.Update(msg)
	m.openForm = updated.(*Dialog)

	content, ok := m.openForm.Content().(*OpenForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	m.openForm = nil
	m.state = stateMain

	result := content.Result()
	if result.Cancelled || result.Path == "" {
		return m, nil
	}
	return m, m.loadFile(result.Path)
}

func (m *Model) showHelp() tea.Cmd {
	content := NewHelpScreen(&m.keys, m.styles, m.workflow.Session().HasImage())
	m.helpScreen = NewDialog("Help", content, m.styles, m.devMode)
	m.state = stateHelp

	initCmd := m.helpScreen.Init()
	updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) showOpen() tea.Cmd {
	content := NewOpenForm(m.openDir, m.styles.Theme)
	m.openForm = NewDialog("Open Image", content, m.styles, m.devMode)
	m.state = stateOpening
	return m.openForm.Init()
}

func (m *Model) generate() tea.Cmd {
	cmd := m.workflow.Generate()
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.startSpinner())
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) toggleTheme() tea.Cmd {
	t, err := m.preferences.ToggleTheme(context.Background())
	m.styles = theme.NewStyles(t)
	m.spinner.Style = m.styles.Spinner
	if err != nil {
		logging.Logger.Warn("Theme not persisted", "theme", t, "error", err)
		return m.errorManager.SetError(err)
	}
	return nil
}

// handlePaste treats a pasted path as a dropped file. Other pasted text is
// ignored.
func (m *Model) handlePaste(raw string) tea.Cmd {
	if !m.loader.IsFile(raw) {
		logging.Logger.Debug("Ignoring paste that is not a file path")
		return nil
	}
	return m.loadFile(raw)
}

func (m *Model) loadFile(path string) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		file, err := loader.Load(path)
		return fileLoadedMsg{err: err, file: file, path: path}
	}
}

func (m *Model) handleFileLoaded(msg fileLoadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Logger.Warn("Failed to load file", "path", msg.path, "error", msg.err)
		return m.errorManager.SetError(msg.err)
	}

	if !m.workflow.LoadImage(msg.file) {
		return nil
	}
	m.selectedTag = 0
	m.syncWithWorkflow()
	return nil
}

// syncWithWorkflow drops UI edit state that no longer matches the session
func (m *Model) syncWithWorkflow() {
	if rev := m.workflow.TagsRevision(); rev != m.tagsRevision {
		m.tagsRevision = rev
		m.tagEditor.Reset()
		m.draftInput.SetValue("")
		if m.state == stateAddingTag || m.state == stateEditingTag {
			m.leaveTagInput()
		}
	}
	m.clampSelection()

	if m.state == stateEditingDescription {
		if !m.workflow.CanEditDescription() {
			m.leaveDescription()
		} else if text := m.workflow.Session().Description; text != m.description.Value() {
			m.description.SetValue(text)
		}
	}
}

func (m *Model) clampSelection() {
	n := len(m.workflow.Session().Tags)
	if m.selectedTag >= n {
		m.selectedTag = n - 1
	}
	if m.selectedTag < 0 {
		m.selectedTag = 0
	}
}

func (m *Model) leaveTagInput() {
	m.draftInput.Blur()
	m.tagInput.Blur()
	m.tagInput.SetValue("")
	m.state = stateMain
}

func (m *Model) leaveDescription() {
	m.description.Blur()
	m.state = stateMain
}

func (m *Model) busy() bool {
	return m.workflow.Phase() != domain.PhaseIdle
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateOpening:
		if m.width <= 0 || m.height <= 0 {
			return m.openForm.View()
		}
		return centerOverlay(m.mainView(), m.styles.Panel.Render(m.openForm.View()), m.width, m.height, m.styles.Placeholder)
	}

	return m.mainView()
}

func (m *Model) mainView() string {
	session := m.workflow.Session()
	sections := []string{
		renderHeader(m.styles, m.devMode, ""),
		m.renderImage(session),
		m.renderDescription(session),
		m.renderTags(session),
	}

	if m.errorManager.HasError() {
		sections = append(sections, m.styles.Error.Render(formatErrorForDisplay(m.errorManager.GetError(), max(m.width, 40))))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(m.width-4, 20)
}

func (m *Model) renderImage(session domain.Session) string {
	if !session.HasImage() {
		hint := fmt.Sprintf("Press %s to open an image, or drop one on this window", m.keys.Application.Open.Help().Key)
		return m.styles.DropZone.Width(m.contentWidth()).Render(hint)
	}

	img := session.Image
	details := []string{img.MIME, humanize.Bytes(uint64(img.Size))}
	if img.Width > 0 && img.Height > 0 {
		details = append(details, fmt.Sprintf("%dx%d", img.Width, img.Height))
	}
	return m.styles.Panel.Width(m.contentWidth()).Render(
		m.styles.Title.UnsetPadding().Render(img.Name) + "\n" +
			m.styles.ImageInfo.Render(strings.Join(details, " · ")),
	)
}

func (m *Model) sectionTitle(title string, copied bool) string {
	line := m.styles.Section.Render(title)
	if copied {
		line += " " + m.styles.Copied.Render("✓ Copied")
	}
	return line
}

func (m *Model) renderDescription(session domain.Session) string {
	var body string
	switch {
	case session.BusyDescription:
		body = m.spinner.View() + " " + m.styles.Placeholder.Render("Describing image...")
	case m.state == stateEditingDescription:
		body = m.description.View()
	case session.Description == "":
		body = m.styles.Placeholder.Render("No description yet")
	default:
		body = m.styles.Description.Width(m.contentWidth()).Render(session.Description)
	}

	return "\n" + m.sectionTitle("Description", session.DescriptionCopied) + "\n" + body
}

func (m *Model) renderTags(session domain.Session) string {
	title := m.sectionTitle("Tags", session.TagsCopied)
	if session.BusyTags {
		return "\n" + title + "\n" + m.spinner.View() + " " + m.styles.Placeholder.Render("Generating tags...")
	}

	editingIndex, editing := m.tagEditor.Editing()
	chips := make([]string, 0, len(session.Tags))
	for i, tag := range session.Tags {
		switch {
		case editing && m.state == stateEditingTag && i == editingIndex:
			chips = append(chips, m.styles.TagSelected.Render(m.tagInput.View()))
		case i == m.selectedTag && m.state == stateMain:
			chips = append(chips, m.styles.TagSelected.Render(tag))
		default:
			chips = append(chips, m.styles.Tag.Render(tag))
		}
	}

	body := m.styles.Placeholder.Render("No tags yet")
	if len(chips) > 0 {
		body = lipgloss.NewStyle().Width(m.contentWidth()).Render(strings.Join(chips, " "))
	}

	if m.state == stateAddingTag {
		draft := m.draftInput.View()
		if !m.tagEditor.CanAddDraft(session.Tags) {
			draft += " " + m.styles.Placeholder.Render("(enter a new, unique tag)")
		}
		body += "\n" + draft
	}

	return "\n" + title + "\n" + body
}

func (m *Model) renderFooter() string {
	var hints []string
	switch m.state {
	case stateAddingTag, stateEditingTag:
		hints = []string{
			m.styles.HelpShortcut.Render("enter") + " " + m.styles.HelpLabel.Render("save"),
			m.styles.HelpShortcut.Render("esc") + " " + m.styles.HelpLabel.Render("cancel"),
		}
	case stateEditingDescription:
		hints = []string{m.styles.HelpShortcut.Render("esc") + " " + m.styles.HelpLabel.Render("done")}
	default:
		for _, b := range m.keys.ShortHelp() {
			help := b.Help()
			hints = append(hints, m.styles.HelpShortcut.Render(help.Key)+" "+m.styles.HelpLabel.Render(help.Desc))
		}
	}
	return m.styles.HelpStyle.Render(strings.Join(hints, " • "))
}
