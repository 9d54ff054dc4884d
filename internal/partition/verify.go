package partition

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Verify checks that chunks form a disjoint cover of [0, n): every item lies
// inside the domain, appears in exactly one chunk, and no item is missing.
func Verify(chunks []Chunk, n uint64) error {
	seen := bitset.New(uint(n))
	for _, c := range chunks {
		for _, item := range c.Items {
			if item >= n {
				return fmt.Errorf("chunk %d: item %d outside domain [0, %d)", c.Index, item, n)
			}
			if seen.Test(uint(item)) {
				return fmt.Errorf("chunk %d: item %d assigned twice", c.Index, item)
			}
			seen.Set(uint(item))
		}
	}
	if covered := seen.Count(); covered != uint(n) {
		missing, _ := seen.NextClear(0)
		return fmt.Errorf("%d of %d items unassigned (first missing: %d)", uint(n)-covered, n, missing)
	}
	return nil
}
