package orchestration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/primecount/internal/aggregator"
	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/parallel"
	"github.com/agbru/primecount/internal/partition"
	"github.com/agbru/primecount/internal/predicate"
	"github.com/agbru/primecount/internal/sysinfo"
	"github.com/agbru/primecount/internal/worker"
)

var tracer = otel.Tracer("github.com/agbru/primecount/internal/orchestration")

// maxCapacityHint bounds the aggregator preallocation.
const maxCapacityHint = 1 << 22

// Options configures a single run.
type Options struct {
	// N is the domain size; the domain is [0, N).
	N uint64
	// Workers is the worker count hint. Zero selects the available
	// parallelism; negative values are rejected.
	Workers int
	// Policy selects how the domain is partitioned.
	Policy partition.Policy
	// Predicate defaults to predicate.IsPrime.
	Predicate predicate.Func
	// Rand drives the interleaved shuffle. A fresh generator is used when nil.
	Rand *rand.Rand
	// Observer receives worker events. Defaults to NullObserver.
	Observer Observer
	// Hook sees each local result before it is merged.
	Hook worker.LocalResultHook
	// MergeOnJoin makes tasks hand their local results back to the
	// orchestrator, which merges them in worker order after the join.
	MergeOnJoin bool
}

// MaxN is the largest domain size a run accepts: the domain is held in a
// single slice.
const MaxN uint64 = math.MaxInt

// CheckDomainSize rejects domain sizes that cannot be materialized.
func CheckDomainSize(n uint64) error {
	if n > MaxN {
		return apperrors.NewConfigError("domain size %d exceeds the maximum of %d", n, MaxN)
	}
	return nil
}

// planFunc builds the chunks of a run. Tests replace it.
var planFunc = partition.Plan

// ResolveWorkerCount turns a worker count hint into the number of tasks to
// spawn. A hint of 0 means the available parallelism.
func ResolveWorkerCount(hint int) (int, error) {
	if hint < 0 {
		return 0, apperrors.NewConfigError("worker count must be at least 1, got %d", hint)
	}
	if hint > 0 {
		return hint, nil
	}
	w := sysinfo.AvailableParallelism()
	if w < 1 {
		return 0, apperrors.NewConfigError("could not determine available parallelism")
	}
	return w, nil
}

// Run counts the items of [0, N) matching the predicate using a fixed pool
// of workers.
//
// The domain is built before the timer starts. Partitioning, the check that
// the chunks cover the domain exactly once, the fan-out and the join are
// timed. Every worker runs to completion; if any of them
// fails, or if fewer merges than workers were recorded, the run fails and
// no count is reported.
//
// Parameters:
//   - ctx: Carries tracing information only. Runs are not cancellable.
//   - opts: The run configuration.
//
// Returns:
//   - Result: The count, timings and per-worker reports.
//   - error: A ConfigError, WorkerError or IncompleteRunError.
func Run(ctx context.Context, opts Options) (Result, error) {
	w, err := ResolveWorkerCount(opts.Workers)
	if err != nil {
		return Result{Err: err}, err
	}
	if err := CheckDomainSize(opts.N); err != nil {
		return Result{Err: err}, err
	}
	pred := opts.Predicate
	if pred == nil {
		pred = predicate.IsPrime
	}
	obs := opts.Observer
	if obs == nil {
		obs = NullObserver{}
	}
	rng := opts.Rand
	if rng == nil && opts.Policy.Shuffles() {
		rng = partition.NewRand()
	}

	res := Result{Label: opts.Policy.String(), Policy: opts.Policy, N: opts.N, Workers: w}
	domain := partition.NewDomain(opts.N)

	ctx, span := tracer.Start(ctx, "orchestration.run", trace.WithAttributes(
		attribute.String("run.policy", opts.Policy.String()),
		attribute.Int("run.workers", w),
		attribute.Int64("run.n", int64(min(opts.N, math.MaxInt64))),
	))
	defer span.End()

	start := time.Now()
	chunks, err := planFunc(domain, w, opts.Policy, rng)
	if err == nil {
		err = partition.Verify(chunks, opts.N)
	}
	if err != nil {
		res.Err = apperrors.WrapError(err, "partition")
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, "partition failed")
		return res, res.Err
	}

	agg := aggregator.New(capacityHint(opts.N))
	reports := make([]worker.Report, w)
	var deferred []*deferredSink
	if opts.MergeOnJoin {
		deferred = make([]*deferredSink, w)
	}

	err = parallel.Run(w, func(s *parallel.Scope) {
		for _, chunk := range chunks {
			task := worker.Task{ID: chunk.Index, Chunk: chunk, Policy: opts.Policy}
			var sink worker.Sink = agg
			if opts.MergeOnJoin {
				d := &deferredSink{}
				deferred[task.ID] = d
				sink = d
			}
			s.Go(task.ID, func() error {
				obs.WorkerStarted(task.ID, task.Chunk.Len())
				report, err := task.Run(ctx, pred, sink, opts.Hook)
				if err != nil {
					return err
				}
				reports[task.ID] = report
				obs.WorkerFinished(report)
				return nil
			})
		}
	})
	if err == nil && opts.MergeOnJoin {
		err = mergeDeferred(agg, deferred)
	}
	res.Elapsed = time.Since(start)
	res.Reports = reports

	if err != nil {
		err = asWorkerError(err)
	} else {
		err = verifyMerges(agg, w)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")
		res.Err = err
		return res, err
	}

	res.Matches = agg.Seal()
	res.MatchCount = len(res.Matches)
	span.SetAttributes(attribute.Int("run.matches", res.MatchCount))
	return res, nil
}

// asWorkerError converts a task failure reported by the scope into a
// WorkerError naming the first failed worker.
func asWorkerError(err error) error {
	var taskErr *parallel.TaskError
	if errors.As(err, &taskErr) {
		return apperrors.WorkerError{WorkerID: taskErr.ID, Cause: taskErr.Err}
	}
	return err
}

// verifyMerges fails when fewer workers merged than were spawned.
func verifyMerges(agg *aggregator.Aggregator, workers int) error {
	if merged := agg.Merges(); merged != workers {
		return apperrors.IncompleteRunError{Expected: workers, Merged: merged}
	}
	return nil
}

// capacityHint estimates pi(n) as n/ln(n) with some headroom.
func capacityHint(n uint64) int {
	if n < 16 {
		return int(n)
	}
	est := 1.2 * float64(n) / math.Log(float64(n))
	if est > maxCapacityHint {
		return maxCapacityHint
	}
	return int(est)
}

// deferredSink holds a worker's local result until the orchestrator merges
// it after the join.
type deferredSink struct {
	items  []uint64
	merged bool
}

func (d *deferredSink) Merge(local []uint64) error {
	d.items = local
	d.merged = true
	return nil
}

func mergeDeferred(agg *aggregator.Aggregator, sinks []*deferredSink) error {
	for id, d := range sinks {
		if !d.merged {
			continue
		}
		if err := agg.Merge(d.items); err != nil {
			return apperrors.WorkerError{WorkerID: id, Cause: fmt.Errorf("merge on join: %w", err)}
		}
	}
	return nil
}
