package orchestration

import (
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/worker"
)

// LoggingObserver writes worker events at debug level.
type LoggingObserver struct {
	Logger logging.Logger
}

// WorkerStarted logs the chunk size handed to a worker.
func (o LoggingObserver) WorkerStarted(id, items int) {
	o.Logger.Debug("worker started", logging.Int("worker", id), logging.Int("items", items))
}

// WorkerFinished logs a worker's timing and match count.
func (o LoggingObserver) WorkerFinished(r worker.Report) {
	o.Logger.Debug("worker finished",
		logging.Int("worker", r.ID),
		logging.Int("items", r.Items),
		logging.Int("matches", r.Matches),
		logging.Duration("duration", r.Duration),
	)
}
