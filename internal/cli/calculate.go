package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecount/internal/config"
	"github.com/agbru/primecount/internal/partition"
	"github.com/agbru/primecount/internal/ui"
)

// PrintExecutionConfig displays the run configuration before any work
// starts. The "Using W threads." line is printed with the resolved worker
// count.
func PrintExecutionConfig(cfg config.AppConfig, workers int, policies []partition.Policy, out io.Writer) {
	c := ui.ColorProvider{}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Counting primes below %s%s%s.\n",
		c.Cyan(), formatCount(cfg.N), c.Reset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, GOMAXPROCS %d, Go %s.\n",
		c.Cyan(), runtime.NumCPU(), c.Reset(), runtime.GOMAXPROCS(0), runtime.Version())
	fmt.Fprintf(out, "Using %d threads.\n", workers)

	mode := fmt.Sprintf("%s partitioning", policies[0])
	if len(policies) > 1 {
		mode = "comparison of all partition policies"
	}
	if cfg.Repeat > 1 {
		mode = fmt.Sprintf("%s, %d runs", mode, cfg.Repeat)
	}
	if cfg.MergeOnJoin {
		mode += ", merged on join"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", mode)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
