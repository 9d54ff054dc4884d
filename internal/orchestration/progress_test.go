package orchestration

import (
	"sync"
	"testing"

	"github.com/agbru/primecount/internal/worker"
)

func TestNewProgressAggregator_Positive(t *testing.T) {
	agg := NewProgressAggregator(3)
	if agg == nil {
		t.Fatal("expected non-nil aggregator for numWorkers=3")
	}
	if agg.NumWorkers() != 3 {
		t.Errorf("expected NumWorkers()=3, got %d", agg.NumWorkers())
	}
}

func TestNewProgressAggregator_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if agg := NewProgressAggregator(n); agg != nil {
			t.Errorf("expected nil aggregator for numWorkers=%d", n)
		}
	}
}

func TestProgressAggregator_Events(t *testing.T) {
	agg := NewProgressAggregator(4)

	agg.WorkerStarted(0, 10)
	agg.WorkerStarted(1, 10)
	agg.WorkerFinished(worker.Report{ID: 0})

	snap := agg.Snapshot()
	if snap.Started != 2 || snap.Finished != 1 {
		t.Errorf("started/finished = %d/%d, want 2/1", snap.Started, snap.Finished)
	}
	if snap.Progress != 0.25 {
		t.Errorf("Progress = %f, want 0.25", snap.Progress)
	}
	if snap.ETA < 0 {
		t.Errorf("ETA should not be negative, got %v", snap.ETA)
	}
}

func TestProgressAggregator_ConcurrentEvents(t *testing.T) {
	const workers = 16
	agg := NewProgressAggregator(workers)

	var wg sync.WaitGroup
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg.WorkerStarted(id, 1)
			agg.WorkerFinished(worker.Report{ID: id})
		}()
	}
	wg.Wait()

	snap := agg.Snapshot()
	if snap.Finished != workers {
		t.Errorf("Finished = %d, want %d", snap.Finished, workers)
	}
	if snap.Progress != 1 {
		t.Errorf("Progress = %f, want 1", snap.Progress)
	}
	if snap.ETA != 0 {
		t.Errorf("ETA after completion = %v, want 0", snap.ETA)
	}
}
