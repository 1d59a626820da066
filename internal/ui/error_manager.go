package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay. seq identifies the
// error it was scheduled for.
type clearErrorMsg struct {
	seq uint64
}

// ErrorManager holds the error shown on the status line and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	seq             uint64
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear
// delay. A zero delay keeps errors until the next one replaces them.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError shows err and returns the command that clears it after the delay
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.seq++
	if em.errorClearDelay <= 0 {
		return nil
	}

	msg := clearErrorMsg{seq: em.seq}
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return msg
	})
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// handleClear clears the error if msg was scheduled for it. A newer error
// keeps its own full delay.
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.ClearError()
	}
}
