package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/worker"
)

type workerRow struct {
	items    int
	matches  int
	duration time.Duration
	started  bool
	done     bool
}

// WorkersModel lists every worker with its state and a duration bar scaled
// to the slowest finished worker.
type WorkersModel struct {
	rows   []workerRow
	offset int
	width  int
	height int
}

// NewWorkersModel creates a panel for the given number of workers.
func NewWorkersModel(workers int) WorkersModel {
	return WorkersModel{rows: make([]workerRow, max(workers, 0))}
}

// SetSize updates dimensions.
func (m *WorkersModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Start marks worker id as running. A worker that already finished is
// reset, which happens when the next run of a session reuses its id.
func (m *WorkersModel) Start(id, items int) {
	m.grow(id)
	m.rows[id] = workerRow{items: items, started: true}
}

// Finish records the report of a finished worker.
func (m *WorkersModel) Finish(r worker.Report) {
	m.grow(r.ID)
	m.rows[r.ID] = workerRow{
		items:    r.Items,
		matches:  r.Matches,
		duration: r.Duration,
		started:  true,
		done:     true,
	}
}

func (m *WorkersModel) grow(id int) {
	for len(m.rows) <= id {
		m.rows = append(m.rows, workerRow{})
	}
}

// Reset clears all rows but keeps the worker count.
func (m *WorkersModel) Reset() {
	m.rows = make([]workerRow, len(m.rows))
	m.offset = 0
}

// Counts returns the number of finished workers and the total.
func (m WorkersModel) Counts() (finished, total int) {
	for _, r := range m.rows {
		if r.done {
			finished++
		}
	}
	return finished, len(m.rows)
}

// Durations returns the durations of the finished workers.
func (m WorkersModel) Durations() []time.Duration {
	var out []time.Duration
	for _, r := range m.rows {
		if r.done {
			out = append(out, r.duration)
		}
	}
	return out
}

// ScrollUp moves the visible window up by one row.
func (m *WorkersModel) ScrollUp() {
	if m.offset > 0 {
		m.offset--
	}
}

// ScrollDown moves the visible window down by one row.
func (m *WorkersModel) ScrollDown() {
	if m.offset < len(m.rows)-m.visibleRows() {
		m.offset++
	}
}

// visibleRows is the number of worker rows that fit below the panel title
// and the summary line, inside the border.
func (m WorkersModel) visibleRows() int {
	return max(m.height-4, 1)
}

// View renders the panel.
func (m WorkersModel) View() string {
	finished, total := m.Counts()

	var slowest time.Duration
	for _, r := range m.rows {
		if r.done && r.duration > slowest {
			slowest = r.duration
		}
	}

	barWidth := max(m.width-60, 4)
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Workers"))
	b.WriteString(fmt.Sprintf("  %d/%d done\n", finished, total))

	end := min(m.offset+m.visibleRows(), len(m.rows))
	for id := m.offset; id < end; id++ {
		b.WriteString(m.renderRow(id, slowest, barWidth))
		b.WriteByte('\n')
	}

	return panelStyle.Width(max(m.width-2, 0)).Height(max(m.height-2, 0)).Render(strings.TrimRight(b.String(), "\n"))
}

func (m WorkersModel) renderRow(id int, slowest time.Duration, barWidth int) string {
	r := m.rows[id]
	label := workerIDStyle.Render(fmt.Sprintf("#%-3d", id))

	switch {
	case !r.started:
		return label + " " + workerPendingStyle.Render("waiting")
	case !r.done:
		return label + " " + workerPendingStyle.Render(fmt.Sprintf("running %d items", r.items))
	}

	ratio := 0.0
	if slowest > 0 {
		ratio = float64(r.duration) / float64(slowest)
	}
	filled, empty := RenderBar(ratio, barWidth)
	return fmt.Sprintf("%s %s %9s items %7s primes %s%s",
		label,
		workerDoneStyle.Render("done"),
		format.FormatNumberString(fmt.Sprint(r.items)),
		format.FormatNumberString(fmt.Sprint(r.matches)),
		barStyle.Render(filled),
		barEmptyStyle.Render(empty),
	) + " " + format.FormatSeconds(r.duration, 3) + "s"
}
