package orchestration

import (
	"sync"
	"time"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/worker"
)

// ProgressAggregator tracks how many workers of a run have finished.
// It wraps format.ProgressWithETA and implements Observer, so both CLI and
// TUI can poll it from their own refresh loop.
type ProgressAggregator struct {
	mu         sync.Mutex
	state      *format.ProgressWithETA
	numWorkers int
	started    int
	finished   int
}

// NewProgressAggregator creates a new aggregator for the given number
// of workers. Returns nil if numWorkers <= 0.
func NewProgressAggregator(numWorkers int) *ProgressAggregator {
	if numWorkers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numWorkers),
		numWorkers: numWorkers,
	}
}

// Snapshot is a consistent view of a run's progress.
type Snapshot struct {
	Started  int
	Finished int
	Workers  int
	// Progress is the fraction of finished workers (0.0 to 1.0).
	Progress float64
	// ETA is the estimated time remaining based on the smoothed finish rate.
	ETA time.Duration
}

// WorkerStarted records that a worker began its chunk.
func (a *ProgressAggregator) WorkerStarted(int, int) {
	a.mu.Lock()
	a.started++
	a.mu.Unlock()
}

// WorkerFinished marks a worker as complete.
func (a *ProgressAggregator) WorkerFinished(r worker.Report) {
	a.mu.Lock()
	a.finished++
	a.state.UpdateWithETA(r.ID, 1)
	a.mu.Unlock()
}

// Snapshot returns the current progress without updating it.
func (a *ProgressAggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Started:  a.started,
		Finished: a.finished,
		Workers:  a.numWorkers,
		Progress: a.state.CalculateAverage(),
		ETA:      a.state.GetETA(),
	}
}

// NumWorkers returns the number of workers being tracked.
func (a *ProgressAggregator) NumWorkers() int {
	return a.numWorkers
}
