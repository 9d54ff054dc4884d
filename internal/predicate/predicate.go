// Package predicate defines the per-item test applied by workers, together
// with the trusted sequential enumeration that parallel runs are checked
// against.
package predicate

// Func reports whether a single item matches. Implementations must be pure:
// the same input always yields the same answer, and concurrent calls from
// any number of goroutines need no synchronization.
type Func func(n uint64) bool

// Name is the identifier of the default predicate, used in reports and metrics.
const Name = "trial-division"

// IsPrime reports whether n is prime by trying every divisor in [2, n).
//
// The test is deliberately left unoptimized: its cost grows linearly with n
// for primes, so higher items are more expensive. Chunk assignment and the
// shuffle only matter for load balance because of this property.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	for d := uint64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// ReferenceMatches enumerates [0, n) on the calling goroutine and returns the
// matching items in ascending order. A nil f selects IsPrime.
func ReferenceMatches(n uint64, f Func) []uint64 {
	if f == nil {
		f = IsPrime
	}
	var matches []uint64
	for i := uint64(0); i < n; i++ {
		if f(i) {
			matches = append(matches, i)
		}
	}
	return matches
}

// ReferenceCount returns len(ReferenceMatches(n, f)) without keeping the items.
func ReferenceCount(n uint64, f Func) int {
	if f == nil {
		f = IsPrime
	}
	count := 0
	for i := uint64(0); i < n; i++ {
		if f(i) {
			count++
		}
	}
	return count
}
