package tui

import (
	"fmt"

	"github.com/agbru/primecount/internal/sysmon"
)

const historyLimit = 120

// SystemModel shows host CPU and memory usage as sparklines.
type SystemModel struct {
	host  sysmon.Host
	cpu   *History
	mem   *History
	width int
}

// NewSystemModel creates the panel for the given host.
func NewSystemModel(host sysmon.Host) SystemModel {
	return SystemModel{
		host: host,
		cpu:  NewHistory(historyLimit),
		mem:  NewHistory(historyLimit),
	}
}

// SetWidth updates the available width.
func (m *SystemModel) SetWidth(w int) {
	m.width = w
}

// Push records one sample of each series.
func (m *SystemModel) Push(cpuPercent, memPercent float64) {
	m.cpu.Push(cpuPercent)
	m.mem.Push(memPercent)
}

// Reset drops the recorded samples.
func (m *SystemModel) Reset() {
	m.cpu.Reset()
	m.mem.Reset()
}

// View renders the panel.
func (m SystemModel) View() string {
	n := max(m.width-18, 1)
	title := panelTitleStyle.Render("System")
	if m.host.Model != "" {
		title += versionStyle.Render(fmt.Sprintf("  %s, %d cores", m.host.Model, m.host.LogicalCores))
	}
	cpu := fmt.Sprintf(" CPU %5.1f%% %s", m.cpu.Last(), cpuSparklineStyle.Render(RenderSparkline(m.cpu.Tail(n))))
	mem := fmt.Sprintf(" MEM %5.1f%% %s", m.mem.Last(), memSparklineStyle.Render(RenderSparkline(m.mem.Tail(n))))
	return panelStyle.Width(max(m.width-2, 0)).Render(title + "\n" + cpu + "\n" + mem)
}
