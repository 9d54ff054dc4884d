package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
)

// MetricsModel displays runtime memory figures, the worker timing spread
// and the outcome of the session.
type MetricsModel struct {
	alloc        uint64
	heapInuse    uint64
	numGC        uint32
	numGoroutine int

	spread  metrics.Spread
	timings int

	result  *orchestration.Result
	results []orchestration.Result
	err     error

	width  int
	height int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapInuse = msg.HeapInuse
	m.numGC = msg.NumGC
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSpread recomputes the timing spread over the finished workers.
func (m *MetricsModel) UpdateSpread(durations []time.Duration) {
	m.timings = len(durations)
	m.spread = metrics.ComputeSpread(durations)
}

// SetResult stores the result selected for display.
func (m *MetricsModel) SetResult(r orchestration.Result) {
	m.result = &r
}

// SetResults stores every result of a multi-run session.
func (m *MetricsModel) SetResults(rs []orchestration.Result) {
	m.results = rs
}

// SetError stores the error that ended the session.
func (m *MetricsModel) SetError(err error) {
	m.err = err
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	colWidth := max((m.width-6)/2, 10)
	var rows []string

	rows = append(rows,
		formatMetricCol("Heap:", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapInuse), colWidth)+
			formatMetricCol("GC:", fmt.Sprintf("%d", m.numGC), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
	)

	if m.timings > 1 {
		rows = append(rows,
			formatMetricCol("Fastest:", format.FormatSeconds(m.spread.Min, 3)+"s", colWidth)+
				formatMetricCol("Slowest:", format.FormatSeconds(m.spread.Max, 3)+"s", colWidth),
			formatMetricCol("Imbalance:", fmt.Sprintf("%.1f%%", m.spread.Relative*100), colWidth)+
				formatMetricCol("CV:", fmt.Sprintf("%.3f", m.spread.CV), colWidth),
		)
	}

	for _, r := range m.results {
		status := fmt.Sprintf("%d primes", r.MatchCount)
		if r.Err != nil {
			status = errorStyle.Render("failed")
		}
		rows = append(rows, fmt.Sprintf(" %s %s in %ss",
			metricLabelStyle.Render(fmt.Sprintf("%-16s", r.Label)), status, format.FormatSeconds(r.Elapsed, 4)))
	}

	if m.result != nil {
		rows = append(rows, resultStyle.Render(fmt.Sprintf(" Found %d primes", m.result.MatchCount)),
			fmt.Sprintf(" Calculated in %s seconds", format.FormatSeconds(m.result.Elapsed, 4)))
	}
	if m.err != nil {
		rows = append(rows, errorStyle.Render(" "+m.err.Error()))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(panelTitleStyle.Render("Run") + "\n" + strings.Join(rows, "\n"))
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-11s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
