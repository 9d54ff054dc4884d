package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/partition"
)

// MockResultPresenter records what it was asked to present.
type MockResultPresenter struct {
	tableRows int
	presented *Result
}

func (m *MockResultPresenter) PresentComparisonTable(results []Result, _ io.Writer) {
	m.tableRows = len(results)
}

func (m *MockResultPresenter) PresentResult(result Result, _ PresentationOptions, _ io.Writer) {
	m.presented = &result
}

type mockErrorHandler struct{}

func (mockErrorHandler) HandleError(err error, _ io.Writer) int {
	return apperrors.ExitCodeFor(err)
}

func TestPoliciesToRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []partition.Policy
		wantErr bool
	}{
		{"block", "block", []partition.Policy{partition.Block}, false},
		{"interleaved", "Interleaved", []partition.Policy{partition.Interleaved}, false},
		{"compare", " compare ", partition.Policies, false},
		{"unknown", "striped", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PoliciesToRun(tt.input)
			if tt.wantErr {
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	results, err := Compare(context.Background(), Options{N: 1000, Workers: 3}, partition.Policies...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(partition.Policies) {
		t.Fatalf("got %d results, want %d", len(results), len(partition.Policies))
	}
	for i, res := range results {
		if res.Policy != partition.Policies[i] {
			t.Errorf("result %d has policy %s, want %s", i, res.Policy, partition.Policies[i])
		}
		if res.Err != nil || res.MatchCount != 168 {
			t.Errorf("%s: MatchCount = %d, err = %v", res.Label, res.MatchCount, res.Err)
		}
	}
}

func TestCompareRejectsInvalidWorkerCount(t *testing.T) {
	t.Parallel()
	if _, err := Compare(context.Background(), Options{N: 10, Workers: -3}, partition.Block); err == nil {
		t.Fatal("expected an error for a negative worker count")
	}
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	results, err := Repeat(context.Background(), Options{N: 100, Workers: 2, Policy: partition.Block}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if want := "block #" + string(rune('1'+i)); res.Label != want {
			t.Errorf("Label = %q, want %q", res.Label, want)
		}
		if res.MatchCount != 25 {
			t.Errorf("%s: MatchCount = %d, want 25", res.Label, res.MatchCount)
		}
	}

	if _, err := Repeat(context.Background(), Options{N: 10, Workers: 1}, 0); err == nil {
		t.Error("expected an error for a zero repeat count")
	}
}

func TestRepeatStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	results, err := Repeat(context.Background(), Options{
		N:         10,
		Workers:   2,
		Predicate: func(uint64) bool { panic("boom") },
	}, 5)
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

// TestAnalyzeComparisonResults verifies the logic for comparing results from
// several runs. It checks for consistent results, handling of failures,
// and detection of mismatches.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	workerErr := apperrors.WorkerError{WorkerID: 1, Cause: errors.New("fail")}
	tests := []struct {
		name           string
		results        []Result
		expectedStatus int
		expectedOutput string
	}{
		{
			name: "All success",
			results: []Result{
				{Label: "block", MatchCount: 5, Elapsed: 2 * time.Millisecond},
				{Label: "interleaved", MatchCount: 5, Elapsed: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			expectedOutput: "Success",
		},
		{
			name: "Mismatch",
			results: []Result{
				{Label: "block", MatchCount: 5, Elapsed: time.Millisecond},
				{Label: "interleaved", MatchCount: 6, Elapsed: 2 * time.Millisecond},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
			expectedOutput: "interleaved found 6 matches, expected 5",
		},
		{
			name: "All failure",
			results: []Result{
				{Label: "block", Err: workerErr},
				{Label: "interleaved", Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorWorker,
			expectedOutput: "Failure",
		},
		{
			name: "Mixed success/failure",
			results: []Result{
				{Label: "block", Err: workerErr},
				{Label: "interleaved", MatchCount: 5, Elapsed: time.Millisecond},
			},
			expectedStatus: apperrors.ExitErrorWorker,
			expectedOutput: "Partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			presenter := &MockResultPresenter{}
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, presenter, mockErrorHandler{}, &out)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if !strings.Contains(out.String(), tt.expectedOutput) {
				t.Errorf("output should contain %q, got %q", tt.expectedOutput, out.String())
			}
			if presenter.tableRows != len(tt.results) {
				t.Errorf("table rows = %d, want %d", presenter.tableRows, len(tt.results))
			}
		})
	}
}

func TestAnalyzeComparisonResultsPresentsFastest(t *testing.T) {
	t.Parallel()
	presenter := &MockResultPresenter{}
	results := []Result{
		{Label: "slow", MatchCount: 4, Elapsed: 3 * time.Millisecond},
		{Label: "fast", MatchCount: 4, Elapsed: time.Millisecond},
	}
	AnalyzeComparisonResults(results, PresentationOptions{}, presenter, mockErrorHandler{}, io.Discard)
	if presenter.presented == nil || presenter.presented.Label != "fast" {
		t.Errorf("expected the fastest run to be presented, got %+v", presenter.presented)
	}
}
