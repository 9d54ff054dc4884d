package worker

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/agbru/primecount/internal/aggregator"
	"github.com/agbru/primecount/internal/partition"
	"github.com/agbru/primecount/internal/predicate"
)

// recordingSink counts merge calls and keeps every merged slice.
type recordingSink struct {
	mu     sync.Mutex
	calls  int
	merged [][]uint64
	err    error
}

func (s *recordingSink) Merge(local []uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.merged = append(s.merged, slices.Clone(local))
	return nil
}

func TestTaskRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		items       []uint64
		wantMatches []uint64
	}{
		{"mixed chunk keeps encounter order", []uint64{9, 7, 4, 2, 13, 1}, []uint64{7, 2, 13}},
		{"no matches", []uint64{0, 1, 4, 6}, nil},
		{"empty chunk completes trivially", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sink := &recordingSink{}
			task := Task{ID: 3, Chunk: partition.Chunk{Index: 3, Items: tt.items}, Policy: partition.Block}

			report, err := task.Run(context.Background(), predicate.IsPrime, sink, nil)
			if err != nil {
				t.Fatalf("Run returned %v", err)
			}
			if sink.calls != 1 {
				t.Fatalf("Merge called %d times, want exactly 1", sink.calls)
			}
			if !slices.Equal(sink.merged[0], tt.wantMatches) {
				t.Errorf("merged %v, want %v", sink.merged[0], tt.wantMatches)
			}
			if report.ID != 3 || report.Policy != partition.Block ||
				report.Items != len(tt.items) || report.Matches != len(tt.wantMatches) {
				t.Errorf("unexpected report %+v", report)
			}
			if report.Duration < 0 {
				t.Errorf("negative duration %v", report.Duration)
			}
		})
	}
}

func TestTaskRunHookSeesLocalResult(t *testing.T) {
	t.Parallel()
	var seen []uint64
	var seenID int
	hook := func(id int, local []uint64) {
		seenID = id
		seen = slices.Clone(local)
	}
	task := Task{ID: 1, Chunk: partition.Chunk{Index: 1, Items: []uint64{2, 3, 4, 5}}}

	if _, err := task.Run(context.Background(), predicate.IsPrime, aggregator.New(0), hook); err != nil {
		t.Fatal(err)
	}
	if seenID != 1 || !slices.Equal(seen, []uint64{2, 3, 5}) {
		t.Errorf("hook saw worker %d with %v", seenID, seen)
	}
}

func TestTaskRunMergeFailure(t *testing.T) {
	t.Parallel()
	agg := aggregator.New(0)
	agg.Seal()
	task := Task{ID: 2, Chunk: partition.Chunk{Index: 2, Items: []uint64{2}}}

	_, err := task.Run(context.Background(), predicate.IsPrime, agg, nil)
	if !errors.Is(err, aggregator.ErrSealed) {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()
	odd := func(n uint64) bool { return n%2 == 1 }
	got := Collect([]uint64{5, 4, 3, 2, 1}, odd)
	if want := []uint64{5, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("Collect = %v, want %v", got, want)
	}
}
