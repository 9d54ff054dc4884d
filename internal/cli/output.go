// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayMatches], [DisplaySpread].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteMatchesToFile].

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/primecount/internal/aggregator"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/predicate"
	"github.com/agbru/primecount/internal/ui"
)

// matchesPerLine is the number of values per line when listing matches on
// the console.
const matchesPerLine = 10

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the sorted matches (empty for no file output).
	OutputFile string
	// Presentation holds the console display options.
	Presentation orchestration.PresentationOptions
}

// WriteMatchesToFile writes the matches of a run in ascending order, one per
// line, after a commented header.
func WriteMatchesToFile(res orchestration.Result, path string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Prime Count Result\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Predicate: %s\n", predicate.Name)
	fmt.Fprintf(w, "# Policy: %s\n", res.Policy)
	fmt.Fprintf(w, "# Workers: %d\n", res.Workers)
	fmt.Fprintf(w, "# Duration: %s\n", res.Elapsed)
	fmt.Fprintf(w, "# N: %d\n", res.N)
	fmt.Fprintf(w, "# Count: %d\n", res.MatchCount)
	for _, m := range aggregator.Sorted(res.Matches) {
		w.WriteString(strconv.FormatUint(m, 10))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}

// FormatQuietResult formats a result for quiet mode: the count alone,
// suitable for scripting.
func FormatQuietResult(res orchestration.Result) string {
	return strconv.Itoa(res.MatchCount)
}

// DisplayMatches lists the matches in ascending order.
func DisplayMatches(matches []uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMatches:\n")
	sorted := aggregator.Sorted(matches)
	for i, m := range sorted {
		sep := " "
		if (i+1)%matchesPerLine == 0 || i == len(sorted)-1 {
			sep = "\n"
		}
		fmt.Fprintf(out, "%d%s", m, sep)
	}
}

// DisplayResultWithConfig displays a result and saves the matches to a
// file when requested.
func DisplayResultWithConfig(out io.Writer, res orchestration.Result, config OutputConfig) error {
	DisplayResult(res, config.Presentation, out)

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteMatchesToFile(res, config.OutputFile); err != nil {
		return err
	}
	if !config.Presentation.Quiet {
		c := ui.ColorProvider{}
		fmt.Fprintf(out, "\n%s✓ Matches saved to: %s%s%s\n", c.Green(), c.Cyan(), config.OutputFile, c.Reset())
	}
	return nil
}
