package tui

import (
	"time"

	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/worker"
)

// WorkerStartedMsg is sent when a worker begins its chunk.
type WorkerStartedMsg struct {
	ID    int
	Items int
}

// WorkerFinishedMsg is sent when a worker has merged its matches.
type WorkerFinishedMsg struct {
	Report worker.Report
}

// RunResultMsg carries the result selected for display.
type RunResultMsg struct {
	Result orchestration.Result
}

// ComparisonResultsMsg carries every result of a compare or repeat session.
type ComparisonResultsMsg struct {
	Results []orchestration.Result
}

// ErrorMsg reports a failed run.
type ErrorMsg struct {
	Err error
}

// RunCompleteMsg is sent once the whole session has been analyzed.
type RunCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg carries a host CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
