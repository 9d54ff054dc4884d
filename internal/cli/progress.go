package cli

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/worker"
)

// ProgressDisplay shows a spinner with the number of finished workers while
// a run is in progress. It implements orchestration.Observer.
type ProgressDisplay struct {
	label   string
	agg     *orchestration.ProgressAggregator
	spinner Spinner
	refresh time.Duration
	done    atomic.Int64

	stop chan struct{}
	wg   sync.WaitGroup
}

var _ orchestration.Observer = (*ProgressDisplay)(nil)

// NewProgressDisplay creates a display for workers tasks in total.
// Nothing is drawn until Start is called.
func NewProgressDisplay(label string, workers int, out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{
		label:   label,
		agg:     orchestration.NewProgressAggregator(max(workers, 1)),
		spinner: newSpinner(out),
		refresh: ProgressRefreshRate,
	}
}

// WorkerStarted forwards the event to the progress tracker.
func (p *ProgressDisplay) WorkerStarted(id, items int) { p.agg.WorkerStarted(id, items) }

// WorkerFinished forwards the event to the progress tracker. Completions are
// numbered in arrival order, so a session of several runs sized with the
// total number of tasks fills the bar exactly once.
func (p *ProgressDisplay) WorkerFinished(r worker.Report) {
	r.ID = int(p.done.Add(1) - 1)
	p.agg.WorkerFinished(r)
}

// Start begins drawing. Stop must be called to release the ticker.
func (p *ProgressDisplay) Start() {
	p.stop = make(chan struct{})
	p.spinner.UpdateSuffix(p.suffix())
	p.spinner.Start()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.refresh)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.spinner.UpdateSuffix(p.suffix())
			}
		}
	}()
}

// Stop halts the refresh loop and the spinner.
func (p *ProgressDisplay) Stop() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.wg.Wait()
	p.stop = nil
	p.spinner.Stop()
}

func (p *ProgressDisplay) suffix() string {
	snap := p.agg.Snapshot()
	return fmt.Sprintf(" %s: %d/%d workers done %s",
		p.label, snap.Finished, snap.Workers,
		format.FormatProgressBarWithETA(snap.Progress, snap.ETA, ProgressBarWidth))
}
