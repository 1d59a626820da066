// Package tagedit holds the inline edit and draft state of the tag list.
//
// The editor never owns the tag collection. Every operation that changes
// tags takes the current collection and returns a new one, which the caller
// hands to the workflow.
package tagedit

import (
	"strings"

	"github.com/renato0307/alttext/internal/domain"
)

// Editor is the tag edit sub-state. The zero value has no edit in progress
// and an empty draft.
type Editor struct {
	draft           string
	editing         bool
	editingIndex    int
	editingOriginal string // tag under edit when the edit began
	editingValue    string
}

// New returns an empty editor
func New() *Editor {
	return &Editor{}
}

// Editing reports whether an edit is in progress and at which index
func (e *Editor) Editing() (int, bool) {
	return e.editingIndex, e.editing
}

// EditingValue returns the in-progress edit text
func (e *Editor) EditingValue() string {
	return e.editingValue
}

// Draft returns the new-tag draft text
func (e *Editor) Draft() string {
	return e.draft
}

// BeginEdit starts editing tags[index]. An edit already in progress is
// replaced.
func (e *Editor) BeginEdit(tags []string, index int) error {
	if index < 0 || index >= len(tags) {
		return domain.ErrIndexOutOfRange
	}

	e.editing = true
	e.editingIndex = index
	e.editingOriginal = tags[index]
	e.editingValue = tags[index]
	return nil
}

// UpdateEditingValue overwrites the in-progress edit text
func (e *Editor) UpdateEditingValue(text string) error {
	if !e.editing {
		return domain.ErrNotEditing
	}
	e.editingValue = text
	return nil
}

// CommitEdit applies the in-progress edit to tags. The edit is discarded when
// the trimmed value is empty, when it duplicates a tag at another index, or
// when the tag under edit is no longer at its index. The edit state is
// cleared in every case.
func (e *Editor) CommitEdit(tags []string) ([]string, bool) {
	if !e.editing {
		return tags, false
	}

	index := e.editingIndex
	original := e.editingOriginal
	value := strings.TrimSpace(e.editingValue)
	e.CancelEdit()

	if index >= len(tags) || tags[index] != original {
		return tags, false
	}
	if value == "" {
		return tags, false
	}
	if i := domain.IndexOfTag(tags, value); i != -1 && i != index {
		return tags, false
	}

	updated := append([]string(nil), tags...)
	updated[index] = value
	return updated, true
}

// CancelEdit discards the edit state without touching any collection
func (e *Editor) CancelEdit() {
	e.editing = false
	e.editingIndex = 0
	e.editingOriginal = ""
	e.editingValue = ""
}

// RemoveTag returns tags without the element at index. An edit at or after
// index is abandoned since the element it refers to has moved; an edit before
// index is kept.
func (e *Editor) RemoveTag(tags []string, index int) ([]string, error) {
	if index < 0 || index >= len(tags) {
		return tags, domain.ErrIndexOutOfRange
	}

	if e.editing && e.editingIndex >= index {
		e.CancelEdit()
	}

	updated := make([]string, 0, len(tags)-1)
	updated = append(updated, tags[:index]...)
	updated = append(updated, tags[index+1:]...)
	return updated, nil
}

// UpdateDraft overwrites the new-tag draft
func (e *Editor) UpdateDraft(text string) {
	e.draft = text
}

// CanAddDraft reports whether AddDraft would succeed for tags
func (e *Editor) CanAddDraft(tags []string) bool {
	value := strings.TrimSpace(e.draft)
	return value != "" && !domain.ContainsTag(tags, value)
}

// AddDraft appends the trimmed draft to tags and clears it. When the draft is
// empty or already present, tags and the draft are left as they are.
func (e *Editor) AddDraft(tags []string) ([]string, bool) {
	if !e.CanAddDraft(tags) {
		return tags, false
	}

	updated := make([]string, 0, len(tags)+1)
	updated = append(updated, tags...)
	updated = append(updated, strings.TrimSpace(e.draft))
	e.draft = ""
	return updated, true
}

// Reset clears both the edit and the draft. Called whenever a new tag
// collection replaces the old one.
func (e *Editor) Reset() {
	e.CancelEdit()
	e.draft = ""
}
