package partition

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// ErrInvalidWorkerCount is returned when a split is requested for fewer than
// one worker.
var ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

// Chunk is the slice of the domain owned by one worker.
type Chunk struct {
	// Index is the worker the chunk is assigned to, in [0, W).
	Index int
	// Items are the domain values to test. Block chunks alias the domain
	// slice; interleaved chunks own their backing array.
	Items []uint64
}

// Len returns the number of items in the chunk.
func (c Chunk) Len() int { return len(c.Items) }

// NewDomain returns the ordered domain [0, n).
func NewDomain(n uint64) []uint64 {
	domain := make([]uint64, n)
	for i := range domain {
		domain[i] = uint64(i)
	}
	return domain
}

// NewRand returns a generator for a single shuffle. It is seeded from the
// runtime's random source and the seed is not kept.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Shuffle returns a uniformly permuted copy of items. The input is not
// modified. A nil rng gets a fresh generator from NewRand.
func Shuffle(items []uint64, rng *rand.Rand) []uint64 {
	if rng == nil {
		rng = NewRand()
	}
	shuffled := make([]uint64, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Plan prepares the chunks for one run: interleaved plans shuffle a copy of
// the domain with rng first, block plans slice the domain as is.
func Plan(domain []uint64, workers int, policy Policy, rng *rand.Rand) ([]Chunk, error) {
	items := domain
	if policy.Shuffles() {
		items = Shuffle(domain, rng)
	}
	return Split(items, workers, policy)
}

// Split divides items into exactly workers chunks using the given policy.
// When workers exceeds len(items) the surplus chunks are empty.
func Split(items []uint64, workers int, policy Policy) ([]Chunk, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	switch policy {
	case Block:
		return splitBlocks(items, workers), nil
	case Interleaved:
		return splitInterleaved(items, workers), nil
	default:
		return nil, fmt.Errorf("split: unsupported policy %s", policy)
	}
}

// blockBound returns floor(k*n/w) without overflowing for large n.
func blockBound(k, n, w int) int {
	hi, lo := bits.Mul64(uint64(k), uint64(n))
	q, _ := bits.Div64(hi, lo, uint64(w))
	return int(q)
}

// splitBlocks gives chunk k the range [k*n/w, (k+1)*n/w). The remainder of
// an uneven division is spread over the chunks, so sizes differ by at most one.
func splitBlocks(items []uint64, workers int) []Chunk {
	n := len(items)
	chunks := make([]Chunk, workers)
	for k := range chunks {
		lo, hi := blockBound(k, n, workers), blockBound(k+1, n, workers)
		chunks[k] = Chunk{Index: k, Items: items[lo:hi:hi]}
	}
	return chunks
}

// splitInterleaved reads items in windows of size workers and deals the j-th
// item of every window to chunk j.
func splitInterleaved(items []uint64, workers int) []Chunk {
	n := len(items)
	chunks := make([]Chunk, workers)
	for k := range chunks {
		size := 0
		if k < n {
			size = (n - k + workers - 1) / workers
		}
		chunks[k] = Chunk{Index: k, Items: make([]uint64, 0, size)}
	}
	for start := 0; start < n; start += workers {
		end := min(start+workers, n)
		for j, item := range items[start:end] {
			chunks[j].Items = append(chunks[j].Items, item)
		}
	}
	return chunks
}
