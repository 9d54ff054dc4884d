package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/worker"
)

// programRef is a shared reference to the tea.Program.
// bubbletea copies the model on every Update, so the orchestration goroutine
// holds this pointer instead of the model.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
// It is a no-op until a program has been set.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIObserver forwards worker lifecycle events to the dashboard.
type TUIObserver struct {
	ref *programRef
}

var _ orchestration.Observer = (*TUIObserver)(nil)

// WorkerStarted sends a WorkerStartedMsg.
func (o *TUIObserver) WorkerStarted(id, items int) {
	o.ref.Send(WorkerStartedMsg{ID: id, Items: items})
}

// WorkerFinished sends a WorkerFinishedMsg.
func (o *TUIObserver) WorkerFinished(r worker.Report) {
	o.ref.Send(WorkerFinishedMsg{Report: r})
}

// TUIResultPresenter sends results to the dashboard instead of writing them.
type TUIResultPresenter struct {
	ref *programRef
}

var (
	_ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler    = (*TUIResultPresenter)(nil)
)

// PresentComparisonTable sends every result to the dashboard.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.Result, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentResult sends the selected result to the dashboard.
func (t *TUIResultPresenter) PresentResult(result orchestration.Result, _ orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(RunResultMsg{Result: result})
}

// HandleError sends the error to the dashboard and returns its exit code.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err})
	return apperrors.HandleRunError(err, io.Discard, nil)
}
