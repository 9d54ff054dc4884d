package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/ui"
	"github.com/agbru/primecount/internal/worker"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays one row per run with its duration, count,
// timing spread and status. Uses manual padding to correctly handle ANSI
// color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.Result, out io.Writer) {
	c := ui.ColorProvider{}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	labelWidth, durationWidth := len("Run"), len("Duration")
	for _, res := range results {
		labelWidth = max(labelWidth, len(res.Label))
		durationWidth = max(durationWidth, len(displayDuration(res.Elapsed)))
	}

	fmt.Fprintf(out, "%s%s   %s   %8s   %7s   Status%s\n",
		c.Bold(), padRight("Run", labelWidth), padRight("Duration", durationWidth), "Primes", "Spread", c.Reset())

	for _, res := range results {
		var status, count, spread string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", c.Red(), res.Err, c.Reset())
			count, spread = "-", "-"
		} else {
			status = fmt.Sprintf("%s✅ Success%s", c.Green(), c.Reset())
			count = strconv.Itoa(res.MatchCount)
			spread = fmt.Sprintf("%.1f%%", 100*metrics.ComputeSpread(reportDurations(res.Reports)).Relative)
		}
		duration := displayDuration(res.Elapsed)
		fmt.Fprintf(out, "%s%s%s   %s%s%s   %8s   %7s   %s\n",
			c.Cyan(), padRight(res.Label, labelWidth), c.Reset(),
			c.Yellow(), padRight(duration, durationWidth), c.Reset(),
			count, spread, status)
	}
}

// PresentResult displays the final result of a run.
func (CLIResultPresenter) PresentResult(result orchestration.Result, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError reports a run error and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleRunError(err, out, ui.ColorProvider{})
}

// DisplayResult prints the per-thread timings (verbose), the count and the
// elapsed time, then the timing spread (details) and the matches (list).
func DisplayResult(res orchestration.Result, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprintln(out, FormatQuietResult(res))
		return
	}
	c := ui.ColorProvider{}

	if opts.Verbose {
		for _, r := range res.Reports {
			fmt.Fprintf(out, "%sThread #%d took %s seconds%s\n",
				c.Grey(), r.ID, format.FormatSeconds(r.Duration, 3), c.Reset())
		}
	}
	fmt.Fprintf(out, "Found %s%d%s primes\n", c.Bold(), res.MatchCount, c.Reset())
	fmt.Fprintf(out, "Calculated in %s%s%s seconds\n", c.Yellow(), format.FormatSeconds(res.Elapsed, 4), c.Reset())

	if opts.Details {
		DisplaySpread(metrics.ComputeSpread(reportDurations(res.Reports)), out)
	}
	if opts.List {
		DisplayMatches(res.Matches, out)
	}
}

// DisplaySpread shows how evenly the work was spread across workers.
func DisplaySpread(s metrics.Spread, out io.Writer) {
	fmt.Fprintf(out, "\nWorker Timing:\n")
	fmt.Fprintf(out, "  Fastest:         %s\n", format.FormatExecutionDuration(s.Min))
	fmt.Fprintf(out, "  Slowest:         %s\n", format.FormatExecutionDuration(s.Max))
	fmt.Fprintf(out, "  Mean:            %s\n", format.FormatExecutionDuration(s.Mean))
	fmt.Fprintf(out, "  Std deviation:   %s\n", format.FormatExecutionDuration(s.StdDev))
	fmt.Fprintf(out, "  Relative spread: %.1f%%\n", 100*s.Relative)
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(d metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(d.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(d.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", d.GCCycles)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(d.PauseNs)/1e6)
}

func reportDurations(reports []worker.Report) []time.Duration {
	ds := make([]time.Duration, len(reports))
	for i, r := range reports {
		ds[i] = r.Duration
	}
	return ds
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + fmt.Sprintf("%*s", n, "")
	}
	return s
}

func formatCount(n uint64) string {
	return format.FormatNumberString(strconv.FormatUint(n, 10))
}
