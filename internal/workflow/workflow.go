// Package workflow owns the session state and drives the two-stage
// describe-then-tag generation cycle.
//
// All methods must be called from a single goroutine, normally the Bubble Tea
// update loop. Generation calls run inside the returned tea.Cmd values and
// report back through Update.
package workflow

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/feedback"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
)

// DefaultFeedbackWindow is how long a "Copied" flag stays set
const DefaultFeedbackWindow = 2 * time.Second

// StalePolicy selects what happens to a generation result that belongs to a
// cycle superseded by Generate, LoadImage or Reset
type StalePolicy string

const (
	// StaleLastWriteWins applies stale results to whatever state is current
	StaleLastWriteWins StalePolicy = "last-write-wins"
	// StaleDiscard drops stale results
	StaleDiscard StalePolicy = "discard"
)

// ParseStalePolicy returns the policy named s. Empty selects the default.
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch StalePolicy(s) {
	case "":
		return StaleLastWriteWins, nil
	case StaleLastWriteWins, StaleDiscard:
		return StalePolicy(s), nil
	}
	return "", fmt.Errorf("invalid stale result policy %q (want %q or %q)", s, StaleLastWriteWins, StaleDiscard)
}

// Config holds the workflow's collaborators and tuning
type Config struct {
	Clipboard ports.Clipboard
	// Context is the parent of every generation call's context
	Context        context.Context
	FeedbackWindow time.Duration
	Generator      ports.Generator
	// RequestTimeout bounds each generation call; zero means no limit
	RequestTimeout time.Duration
	StalePolicy    StalePolicy
}

// Workflow is the session state container
type Workflow struct {
	clipboard        ports.Clipboard
	ctx              context.Context
	descriptionTimer *feedback.Timer
	epoch            uint64 // bumped by every Generate, LoadImage and Reset
	feedbackWindow   time.Duration
	generator        ports.Generator
	requestTimeout   time.Duration
	session          domain.Session
	stalePolicy      StalePolicy
	tagsRevision     uint64 // bumped whenever the workflow replaces the tag collection
	tagsTimer        *feedback.Timer
}

// New creates a Workflow in the initial state
func New(cfg Config) *Workflow {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.FeedbackWindow <= 0 {
		cfg.FeedbackWindow = DefaultFeedbackWindow
	}
	if cfg.StalePolicy == "" {
		cfg.StalePolicy = StaleLastWriteWins
	}

	return &Workflow{
		clipboard:        cfg.Clipboard,
		ctx:              cfg.Context,
		descriptionTimer: feedback.New(),
		feedbackWindow:   cfg.FeedbackWindow,
		generator:        cfg.Generator,
		requestTimeout:   cfg.RequestTimeout,
		session:          domain.Session{Tags: []string{}},
		stalePolicy:      cfg.StalePolicy,
		tagsTimer:        feedback.New(),
	}
}

// Session returns a copy of the current session state
func (w *Workflow) Session() domain.Session {
	return w.session.Snapshot()
}

// Phase returns the current step of the generation cycle
func (w *Workflow) Phase() domain.Phase {
	return w.session.Phase()
}

// TagsRevision changes every time the workflow itself replaces the tag
// collection. Edit state built on an older revision must be dropped.
func (w *Workflow) TagsRevision() uint64 {
	return w.tagsRevision
}

// LoadImage replaces the image and clears the description and tags. Files
// that are not images are ignored and false is returned.
func (w *Workflow) LoadImage(file domain.File) bool {
	image, err := domain.NewImage(file)
	if err != nil {
		logging.Logger.Debug("Ignoring file", "name", file.Name, "mime", file.MIME, "error", err)
		return false
	}

	w.epoch++
	w.session.Image = image
	w.session.Description = ""
	w.replaceTags([]string{})
	if w.stalePolicy == StaleDiscard {
		w.session.BusyDescription = false
		w.session.BusyTags = false
	}

	logging.Logger.Info("Image loaded",
		"name", image.Name,
		"mime", image.MIME,
		"size", image.Size,
		"width", image.Width,
		"height", image.Height)
	return true
}

// Reset returns the session to its initial state, regardless of in-flight
// calls
func (w *Workflow) Reset() {
	w.epoch++
	w.descriptionTimer.Cancel()
	w.tagsTimer.Cancel()
	w.session = domain.Session{}
	w.replaceTags([]string{})
	logging.Logger.Info("Session reset")
}

// CanGenerate reports whether Generate would start a cycle
func (w *Workflow) CanGenerate() bool {
	return w.session.HasImage() && !w.session.BusyDescription
}

// Generate starts a describe-then-tag cycle for the current image. It returns
// nil when there is no image or a description call is outstanding.
func (w *Workflow) Generate() tea.Cmd {
	if !w.CanGenerate() {
		return nil
	}

	w.epoch++
	w.session.BusyDescription = true
	w.session.DescriptionCopied = false
	w.descriptionTimer.Cancel()

	logging.Logger.Info("Generation started", "epoch", w.epoch, "image", w.session.Image.Name)
	return w.describeCmd(w.epoch, w.session.Image)
}

// CanEditDescription reports whether the description may be edited by the
// user: nothing is being generated and the copied indicator is not showing
func (w *Workflow) CanEditDescription() bool {
	return !w.session.BusyDescription && !w.session.BusyTags && !w.session.DescriptionCopied
}

// EditDescription overwrites the description. The lock policy is the
// caller's, see CanEditDescription.
func (w *Workflow) EditDescription(text string) {
	w.session.Description = text
}

// SetTags replaces the tag collection with a user-edited one. Empty and
// repeated tags are dropped.
func (w *Workflow) SetTags(tags []string) {
	w.session.Tags = domain.UniqueTags(tags)
}

// CopyDescription writes the description to the clipboard and shows the
// copied indicator for the feedback window
func (w *Workflow) CopyDescription() tea.Cmd {
	if w.session.Description == "" {
		return nil
	}

	w.session.DescriptionCopied = true
	if err := w.clipboard.WriteText(w.session.Description); err != nil {
		w.session.DescriptionCopied = false
		w.descriptionTimer.Cancel()
		return copyFailed(CopyTargetDescription, err)
	}

	logging.Logger.Debug("Description copied", "length", len(w.session.Description))
	return w.descriptionTimer.Arm(w.feedbackWindow, func() {
		w.session.DescriptionCopied = false
	})
}

// CopyTags writes the tags, joined with ", ", to the clipboard and shows the
// copied indicator for the feedback window
func (w *Workflow) CopyTags() tea.Cmd {
	if len(w.session.Tags) == 0 {
		return nil
	}

	w.session.TagsCopied = true
	if err := w.clipboard.WriteText(domain.JoinTags(w.session.Tags)); err != nil {
		w.session.TagsCopied = false
		w.tagsTimer.Cancel()
		return copyFailed(CopyTargetTags, err)
	}

	logging.Logger.Debug("Tags copied", "count", len(w.session.Tags))
	return w.tagsTimer.Arm(w.feedbackWindow, func() {
		w.session.TagsCopied = false
	})
}

// Update applies a message produced by one of the workflow's commands and
// returns the follow-up command, if any. Unrelated messages are ignored.
func (w *Workflow) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DescriptionReadyMsg:
		return w.handleDescription(msg)
	case TagsReadyMsg:
		w.handleTags(msg)
	case feedback.FiredMsg:
		if !w.descriptionTimer.Handle(msg) {
			w.tagsTimer.Handle(msg)
		}
	}
	return nil
}

func (w *Workflow) handleDescription(msg DescriptionReadyMsg) tea.Cmd {
	if w.isStale(msg.Epoch) {
		logging.Logger.Debug("Discarding stale description", "epoch", msg.Epoch, "current", w.epoch)
		return nil
	}

	if msg.Err != nil {
		logging.Logger.Error("Description generation failed", "epoch", msg.Epoch, "error", msg.Err)
		w.session.Description = domain.DescriptionError
		w.replaceTags([]string{})
		w.session.BusyDescription = false
		return nil
	}

	w.session.Description = msg.Text
	if domain.IsSentinelDescription(msg.Text) {
		logging.Logger.Warn("No description available, skipping tags", "text", msg.Text)
		w.session.BusyDescription = false
		return nil
	}

	w.session.BusyTags = true
	w.tagsRevision++ // pending edits target a collection about to be replaced
	return w.tagsCmd(msg.Epoch, msg.Text)
}

func (w *Workflow) handleTags(msg TagsReadyMsg) {
	if w.isStale(msg.Epoch) {
		logging.Logger.Debug("Discarding stale tags", "epoch", msg.Epoch, "current", w.epoch)
		return
	}

	if msg.Err != nil {
		logging.Logger.Error("Tag generation failed", "epoch", msg.Epoch, "error", msg.Err)
		w.replaceTags([]string{})
	} else {
		w.replaceTags(domain.NormalizeTags(msg.Tags))
	}

	w.session.BusyTags = false
	w.session.BusyDescription = false
	logging.Logger.Info("Generation finished", "epoch", msg.Epoch, "tags", len(w.session.Tags))
}

func (w *Workflow) isStale(epoch uint64) bool {
	return w.stalePolicy == StaleDiscard && epoch != w.epoch
}

func (w *Workflow) replaceTags(tags []string) {
	w.session.Tags = tags
	w.tagsRevision++
}

func (w *Workflow) describeCmd(epoch uint64, image *domain.Image) tea.Cmd {
	generator := w.generator
	parent := w.ctx
	timeout := w.requestTimeout

	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()

		text, err := generator.DescribeImage(ctx, image)
		return DescriptionReadyMsg{Epoch: epoch, Err: err, Text: text}
	}
}

func (w *Workflow) tagsCmd(epoch uint64, text string) tea.Cmd {
	generator := w.generator
	parent := w.ctx
	timeout := w.requestTimeout

	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()

		tags, err := generator.TagsFromDescription(ctx, text)
		return TagsReadyMsg{Epoch: epoch, Err: err, Tags: tags}
	}
}

func withTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func copyFailed(target CopyTarget, err error) tea.Cmd {
	logging.Logger.Warn("Clipboard write failed", "target", target, "error", err)
	return func() tea.Msg {
		return CopyFailedMsg{Err: err, Target: target}
	}
}
