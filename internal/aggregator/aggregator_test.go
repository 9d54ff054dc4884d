package aggregator

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorMerge(t *testing.T) {
	t.Parallel()
	a := New(4)

	require.NoError(t, a.Merge([]uint64{2, 3}))
	require.NoError(t, a.Merge(nil))
	require.NoError(t, a.Merge([]uint64{5}))

	assert.Equal(t, 3, a.Merges(), "empty merges still count")
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []uint64{2, 3, 5}, a.Seal())
}

func TestAggregatorZeroValue(t *testing.T) {
	t.Parallel()
	var a Aggregator
	require.NoError(t, a.Merge([]uint64{7}))
	assert.Equal(t, []uint64{7}, a.Seal())
}

func TestAggregatorSeal(t *testing.T) {
	t.Parallel()
	a := New(0)
	require.NoError(t, a.Merge([]uint64{11}))

	first := a.Seal()
	assert.ErrorIs(t, a.Merge([]uint64{13}), ErrSealed)
	assert.Equal(t, 1, a.Merges(), "a rejected merge is not counted")
	assert.Equal(t, first, a.Seal())
}

// TestAggregatorConcurrentMerges merges from many goroutines released at the
// same instant and checks that no append is lost. Run with -race.
func TestAggregatorConcurrentMerges(t *testing.T) {
	const goroutines = 64
	const perMerge = 100

	for round := 0; round < 20; round++ {
		a := New(0)
		var wg sync.WaitGroup
		barrier := make(chan struct{})

		wg.Add(goroutines)
		for g := 0; g < goroutines; g++ {
			go func(id int) {
				defer wg.Done()
				local := make([]uint64, perMerge)
				for i := range local {
					local[i] = uint64(id*perMerge + i)
				}
				<-barrier
				if err := a.Merge(local); err != nil {
					t.Errorf("merge %d: %v", id, err)
				}
			}(g)
		}

		close(barrier)
		wg.Wait()

		items := a.Seal()
		require.Equal(t, goroutines, a.Merges(), "round %d", round)
		require.Len(t, items, goroutines*perMerge, "round %d", round)
		assert.True(t, slices.IsSorted(Sorted(items)))
		sorted := Sorted(items)
		for i, v := range sorted {
			if v != uint64(i) {
				t.Fatalf("round %d: item %d = %d, an append was lost or duplicated", round, i, v)
			}
		}
	}
}

func TestSorted(t *testing.T) {
	t.Parallel()

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()
		in := []uint64{5, 2, 7, 3}
		assert.Equal(t, []uint64{2, 3, 5, 7}, Sorted(in))
		assert.Equal(t, []uint64{5, 2, 7, 3}, in)
	})

	t.Run("large input goes through the parallel path", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewPCG(3, 5))
		in := make([]uint64, 50_000)
		for i := range in {
			in[i] = rng.Uint64N(1 << 20)
		}
		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, Sorted(in))
	})

	t.Run("ascending runs in shuffled order", func(t *testing.T) {
		t.Parallel()
		const runs, runLen = 64, 500
		order := []int{0, 1}
		for _, r := range rand.New(rand.NewPCG(7, 11)).Perm(runs - 2) {
			order = append(order, r+2)
		}
		var in []uint64
		for _, r := range order {
			for i := 0; i < runLen; i++ {
				in = append(in, uint64(r*runLen+i))
			}
		}
		sorted := Sorted(in)
		require.Len(t, sorted, runs*runLen)
		for i, v := range sorted {
			if v != uint64(i) {
				t.Fatalf("item %d = %d", i, v)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Sorted(nil))
	})
}
