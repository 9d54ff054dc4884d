package orchestration

import (
	"io"
	"time"

	"github.com/agbru/primecount/internal/partition"
	"github.com/agbru/primecount/internal/worker"
)

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/agbru/primecount/internal/orchestration Observer

// Result encapsulates the outcome of a single run.
// It serves as the shared domain type between orchestration and presentation layers.
type Result struct {
	// Label identifies the run in comparison tables (e.g., "interleaved #2").
	Label string
	// Policy is the partition policy used.
	Policy partition.Policy
	// N is the domain size.
	N uint64
	// Workers is the resolved worker count.
	Workers int
	// MatchCount is the size of the sealed shared result.
	MatchCount int
	// Elapsed covers partitioning, fan-out and join. Domain construction is
	// not included.
	Elapsed time.Duration
	// Reports holds one entry per worker, indexed by worker ID.
	Reports []worker.Report
	// Matches is the sealed shared result in merge order.
	Matches []uint64
	// Err contains any error that occurred during the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Details bool
	Quiet   bool
	List    bool
}

// Observer receives worker lifecycle events. Methods are called
// concurrently from worker goroutines and must be safe for that.
type Observer interface {
	// WorkerStarted is called before a worker evaluates its chunk.
	WorkerStarted(id, items int)
	// WorkerFinished is called after a worker merged its local result.
	WorkerFinished(report worker.Report)
}

// NullObserver is a no-op implementation of Observer.
// Useful for quiet mode or testing.
type NullObserver struct{}

// WorkerStarted does nothing.
func (NullObserver) WorkerStarted(int, int) {}

// WorkerFinished does nothing.
func (NullObserver) WorkerFinished(worker.Report) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

// WorkerStarted forwards the event to every observer.
func (m MultiObserver) WorkerStarted(id, items int) {
	for _, o := range m {
		o.WorkerStarted(id, items)
	}
}

// WorkerFinished forwards the event to every observer.
func (m MultiObserver) WorkerFinished(report worker.Report) {
	for _, o := range m {
		o.WorkerFinished(report)
	}
}

// ResultPresenter defines the interface for presenting run results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []Result, out io.Writer)

	// PresentResult displays the final result of a run.
	PresentResult(result Result, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
