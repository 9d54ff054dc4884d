// Command generate-golden writes the reference prime counts used by the
// orchestration golden test.
//
//	go run ./cmd/generate-golden -out internal/orchestration/testdata/prime_counts.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/primecount/internal/predicate"
)

// defaultSizes covers the empty domain, the first primes and a few sizes
// that do not divide evenly by common worker counts.
var defaultSizes = []uint64{0, 1, 2, 3, 10, 11, 100, 1000, 1024, 5000, 10000}

type goldenCase struct {
	N     uint64 `json:"n"`
	Count int    `json:"count"`
}

type goldenFile struct {
	Predicate string       `json:"predicate"`
	Cases     []goldenCase `json:"cases"`
}

// buildGolden computes the reference count for each size.
func buildGolden(sizes []uint64) goldenFile {
	g := goldenFile{Predicate: predicate.Name, Cases: make([]goldenCase, 0, len(sizes))}
	for _, n := range sizes {
		g.Cases = append(g.Cases, goldenCase{N: n, Count: predicate.ReferenceCount(n, predicate.IsPrime)})
	}
	return g
}

func main() {
	out := flag.String("out", filepath.Join("internal", "orchestration", "testdata", "prime_counts.json"), "Destination file.")
	flag.Parse()

	data, err := json.MarshalIndent(buildGolden(defaultSizes), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding golden data: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d cases to %s\n", len(defaultSizes), *out)
}
