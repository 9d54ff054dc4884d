// Package worker runs one chunk of the domain to completion and merges its
// matches into the shared result exactly once.
package worker

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/primecount/internal/partition"
	"github.com/agbru/primecount/internal/predicate"
)

var tracer = otel.Tracer("github.com/agbru/primecount/internal/worker")

// Sink receives a worker's complete local result in one call.
type Sink interface {
	Merge(local []uint64) error
}

// LocalResultHook observes a worker's local result just before it is
// merged. It must not retain or modify local.
type LocalResultHook func(workerID int, local []uint64)

// Task is one worker's unit of work.
type Task struct {
	ID    int
	Chunk partition.Chunk
	// Policy is the policy the chunk was planned under; it is copied into
	// the report.
	Policy partition.Policy
}

// Report describes a finished task. Duration covers evaluation and merge
// and is informational only.
type Report struct {
	ID       int
	Policy   partition.Policy
	Items    int
	Matches  int
	Duration time.Duration
}

// Run evaluates pred over every item of the chunk, collects the matches in
// encounter order and merges them into sink as a single append.
//
// ctx only carries tracing information; a task is never cancelled.
func (t Task) Run(ctx context.Context, pred predicate.Func, sink Sink, hook LocalResultHook) (Report, error) {
	start := time.Now()
	_, span := tracer.Start(ctx, "worker.run", trace.WithAttributes(
		attribute.Int("worker.id", t.ID),
		attribute.Int("worker.items", t.Chunk.Len()),
	))
	defer span.End()

	local := Collect(t.Chunk.Items, pred)
	if hook != nil {
		hook(t.ID, local)
	}
	if err := sink.Merge(local); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "merge failed")
		return Report{}, fmt.Errorf("worker %d: merge: %w", t.ID, err)
	}

	span.SetAttributes(attribute.Int("worker.matches", len(local)))
	return Report{
		ID:       t.ID,
		Policy:   t.Policy,
		Items:    t.Chunk.Len(),
		Matches:  len(local),
		Duration: time.Since(start),
	}, nil
}

// Collect returns the items for which pred holds, in the order given.
func Collect(items []uint64, pred predicate.Func) []uint64 {
	var local []uint64
	for _, item := range items {
		if pred(item) {
			local = append(local, item)
		}
	}
	return local
}
