// Package aggregator holds the single shared result of a run. Workers merge
// their local results into it one whole slice at a time, under one mutex;
// the orchestrator reads it once, after every worker has returned.
package aggregator

import (
	"errors"
	"slices"
	"sync"

	psort "github.com/exascience/pargo/sort"
)

// ErrSealed is returned by Merge once the final read has started.
var ErrSealed = errors.New("aggregator: merge after seal")

// Aggregator is the exclusion-protected result collection of one run.
// The zero value is ready to use.
type Aggregator struct {
	mu     sync.Mutex
	items  []uint64
	merges int
	sealed bool
}

// New returns an aggregator with room for capacity items.
func New(capacity int) *Aggregator {
	return &Aggregator{items: make([]uint64, 0, max(capacity, 0))}
}

// Merge appends every item of local in a single critical section. The order
// of items across merges reflects whichever caller acquired the lock first.
func (a *Aggregator) Merge(local []uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.sealed {
		return ErrSealed
	}
	a.items = append(a.items, local...)
	a.merges++
	return nil
}

// Merges returns the number of completed merges, empty ones included.
func (a *Aggregator) Merges() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.merges
}

// Len returns the number of items merged so far.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

// Seal ends the writing phase and returns the merged items. Every later
// Merge fails with ErrSealed. Calling Seal again returns the same slice.
func (a *Aggregator) Seal() []uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sealed = true
	return a.items
}

// Sorted returns a copy of items in ascending order. Large results are
// merge-sorted in parallel.
func Sorted(items []uint64) []uint64 {
	sorted := slices.Clone(items)
	psort.StableSort(uint64Slice(sorted))
	return sorted
}

// uint64Slice adapts []uint64 to the parallel merge sort.
type uint64Slice []uint64

func (s uint64Slice) SequentialSort(i, j int) { slices.Sort(s[i:j]) }
func (s uint64Slice) Len() int                { return len(s) }
func (s uint64Slice) Less(i, j int) bool      { return s[i] < s[j] }

func (s uint64Slice) NewTemp() psort.StableSorter { return make(uint64Slice, len(s)) }

func (s uint64Slice) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(uint64Slice)
	return func(i, j, n int) {
		copy(dst[i:i+n], src[j:j+n])
	}
}
