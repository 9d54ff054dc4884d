package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/partition"
)

// CompareMode is the policy name that selects every partition policy.
const CompareMode = "compare"

// PoliciesToRun determines which policies should be executed for the
// configured policy name. "compare" selects all of them in a stable order.
func PoliciesToRun(name string) ([]partition.Policy, error) {
	if strings.EqualFold(strings.TrimSpace(name), CompareMode) {
		return append([]partition.Policy(nil), partition.Policies...), nil
	}
	p, err := partition.ParsePolicy(name)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	return []partition.Policy{p}, nil
}

// Compare runs the same domain and worker count under each policy.
// Policies run one after another so that their timings do not compete for
// the same cores. A failing policy does not stop the others; its error is
// stored in the corresponding Result.
//
// The returned error is only set when the worker count itself is invalid.
func Compare(ctx context.Context, opts Options, policies ...partition.Policy) ([]Result, error) {
	w, err := ResolveWorkerCount(opts.Workers)
	if err != nil {
		return nil, err
	}
	opts.Workers = w

	results := make([]Result, 0, len(policies))
	for _, p := range policies {
		o := opts
		o.Policy = p
		res, _ := Run(ctx, o)
		results = append(results, res)
	}
	return results, nil
}

// Repeat runs the same configuration times times in sequence. Labels carry
// the run number. It stops at the first failed run and returns the results
// gathered so far together with that error.
func Repeat(ctx context.Context, opts Options, times int) ([]Result, error) {
	if times < 1 {
		return nil, apperrors.NewConfigError("repeat count must be at least 1, got %d", times)
	}
	w, err := ResolveWorkerCount(opts.Workers)
	if err != nil {
		return nil, err
	}
	opts.Workers = w

	results := make([]Result, 0, times)
	for i := range times {
		res, err := Run(ctx, opts)
		res.Label = fmt.Sprintf("%s #%d", opts.Policy, i+1)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// AnalyzeComparisonResults processes the results of several runs over the
// same domain and generates a summary report.
//
// It sorts the results by execution time, validates that every successful
// run found the same number of matches, and displays a comparative table.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []Result, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Elapsed < results[j].Elapsed
	})

	var firstValid *Result
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No run could complete.\n")
		return handler.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil && res.MatchCount != firstValid.MatchCount {
			mismatch := apperrors.MismatchError{Want: firstValid.MatchCount, Got: res.MatchCount, Label: res.Label}
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", mismatch)
			return apperrors.ExitErrorMismatch
		}
	}

	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial. Successful runs are consistent, but at least one run failed.\n")
		presenter.PresentResult(*firstValid, opts, out)
		return apperrors.ExitCodeFor(firstError)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All results are consistent.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
