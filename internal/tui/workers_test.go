package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecount/internal/worker"
)

func TestWorkersModel_Lifecycle(t *testing.T) {
	m := NewWorkersModel(3)
	m.Start(0, 10)
	m.Start(1, 10)
	m.Finish(worker.Report{ID: 0, Items: 10, Matches: 4, Duration: 2 * time.Millisecond})

	finished, total := m.Counts()
	if finished != 1 || total != 3 {
		t.Errorf("Counts() = %d/%d, want 1/3", finished, total)
	}
	if d := m.Durations(); len(d) != 1 || d[0] != 2*time.Millisecond {
		t.Errorf("Durations() = %v", d)
	}
}

func TestWorkersModel_GrowsOnUnknownID(t *testing.T) {
	m := NewWorkersModel(0)
	m.Finish(worker.Report{ID: 4, Items: 1})

	if _, total := m.Counts(); total != 5 {
		t.Errorf("expected 5 rows, got %d", total)
	}
}

func TestWorkersModel_StartResetsFinishedRow(t *testing.T) {
	m := NewWorkersModel(1)
	m.Finish(worker.Report{ID: 0, Items: 5, Matches: 3})
	m.Start(0, 5)

	if finished, _ := m.Counts(); finished != 0 {
		t.Errorf("expected the restarted worker to be running, got %d finished", finished)
	}
}

func TestWorkersModel_Reset(t *testing.T) {
	m := NewWorkersModel(2)
	m.Finish(worker.Report{ID: 1})
	m.Reset()

	finished, total := m.Counts()
	if finished != 0 || total != 2 {
		t.Errorf("after Reset Counts() = %d/%d, want 0/2", finished, total)
	}
}

func TestWorkersModel_Scroll(t *testing.T) {
	m := NewWorkersModel(20)
	m.SetSize(80, 8) // 4 visible rows

	m.ScrollUp()
	if m.offset != 0 {
		t.Errorf("scrolling up at the top moved to %d", m.offset)
	}
	for range 30 {
		m.ScrollDown()
	}
	if m.offset != 16 {
		t.Errorf("expected offset 16 at the bottom, got %d", m.offset)
	}
}

func TestWorkersModel_View(t *testing.T) {
	m := NewWorkersModel(3)
	m.SetSize(90, 10)
	m.Start(1, 50)
	m.Finish(worker.Report{ID: 0, Items: 50, Matches: 15, Duration: 5 * time.Millisecond})

	view := m.View()
	for _, want := range []string{"Workers", "1/3 done", "waiting", "running 50 items", "15 primes"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
