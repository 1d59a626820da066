package workflow

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run executes cmd and every command that follows from it against w, on the
// calling goroutine, until nothing is left to run. Batches are flattened.
// Messages the workflow does not understand are dropped.
func Run(ctx context.Context, w *Workflow, cmd tea.Cmd) error {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			queue = append(queue, w.Update(msg))
		}
	}
	return nil
}
