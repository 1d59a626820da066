// Package feedback implements the one-shot timers that revert the transient
// "Copied" flags.
package feedback

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var nextTimerID atomic.Uint64

// FiredMsg is emitted when an armed timer elapses. It is delivered through the
// Bubble Tea update loop, never on a background goroutine's behalf.
type FiredMsg struct {
	ID  uint64
	Seq uint64
}

// Timer is a single-pending one-shot timer. Arming it again supersedes the
// previous arming; a superseded or cancelled arming never fires.
//
// Timer is not safe for concurrent use. It is owned by a model and only
// touched from its Update method.
type Timer struct {
	fn      func()
	id      uint64
	pending bool
	seq     uint64
}

// New returns an idle timer
func New() *Timer {
	return &Timer{id: nextTimerID.Add(1)}
}

// Arm schedules fn to run after d and returns the command that delivers the
// FiredMsg. Any previously scheduled action is cancelled.
func (t *Timer) Arm(d time.Duration, fn func()) tea.Cmd {
	t.seq++
	t.fn = fn
	t.pending = true

	msg := FiredMsg{ID: t.id, Seq: t.seq}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Cancel drops the pending action, if any
func (t *Timer) Cancel() {
	t.seq++
	t.fn = nil
	t.pending = false
}

// Handle runs the scheduled action when msg belongs to the current arming of
// this timer. It reports whether the message was consumed by this timer, so
// callers can route FiredMsg values between several timers.
func (t *Timer) Handle(msg FiredMsg) bool {
	if msg.ID != t.id {
		return false
	}
	if !t.pending || msg.Seq != t.seq {
		return true
	}

	fn := t.fn
	t.fn = nil
	t.pending = false
	if fn != nil {
		fn()
	}
	return true
}
