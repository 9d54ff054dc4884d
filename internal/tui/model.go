package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecount/internal/config"
	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight        = 1
	footerHeight        = 1
	systemHeight        = 4
	minBodyHeight       = 6
	WorkersWidthPercent = 60
	sampleInterval      = 500 * time.Millisecond
)

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header  HeaderModel
	workers WorkersModel
	metrics MetricsModel
	system  SystemModel
	footer  FooterModel

	keymap KeyMap

	session    orchestration.Session
	cfg        config.AppConfig
	ctx        context.Context
	ref        *programRef
	generation uint64
	done       bool
	paused     bool
	exitCode   int

	width  int
	height int
}

// NewModel creates a new dashboard model.
func NewModel(ctx context.Context, session orchestration.Session, cfg config.AppConfig, version string) Model {
	keymap := DefaultKeyMap()
	summary := fmt.Sprintf("N=%d, %d workers, %s", cfg.N, session.Options.Workers, cfg.Policy)
	return Model{
		header:   NewHeaderModel(version, summary),
		workers:  NewWorkersModel(session.Options.Workers),
		metrics:  NewMetricsModel(),
		system:   NewSystemModel(sysmon.DescribeHost()),
		footer:   NewFooterModel(keymap),
		keymap:   keymap,
		session:  session,
		cfg:      cfg,
		ctx:      ctx,
		ref:      &programRef{},
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.session, m.cfg, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case WorkerStartedMsg:
		m.workers.Start(msg.ID, msg.Items)
		return m, nil

	case WorkerFinishedMsg:
		m.workers.Finish(msg.Report)
		m.metrics.UpdateSpread(m.workers.Durations())
		return m, nil

	case ComparisonResultsMsg:
		m.metrics.SetResults(msg.Results)
		return m, nil

	case RunResultMsg:
		m.metrics.SetResult(msg.Result)
		return m, nil

	case ErrorMsg:
		m.metrics.SetError(msg.Err)
		m.footer.SetError(true)
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, nil

	case TickMsg:
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.system.Push(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		// Workers cannot be interrupted, so a new run only starts once the
		// current one has been analyzed.
		if !m.done {
			return m, nil
		}
		m.generation++
		m.header.Reset()
		m.workers.Reset()
		m.metrics = NewMetricsModel()
		m.system.Reset()
		m.layoutPanels()
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Batch(
			startRunCmd(m.ref, m.ctx, m.session, m.cfg, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		m.workers.ScrollUp()
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.workers.ScrollDown()
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	right := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.system.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.workers.View(), right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	body := max(m.height-headerHeight-footerHeight, minBodyHeight)
	left := m.width * WorkersWidthPercent / 100
	right := m.width - left

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.workers.SetSize(left, body)
	m.metrics.SetSize(right, max(body-systemHeight, 2))
	m.system.SetWidth(right)
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, session orchestration.Session, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, session, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so the run goroutine can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok && m.exitCode != apperrors.ExitSuccess {
		return m.exitCode
	}
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunCmd returns a tea.Cmd that executes the session and analyzes it
// with the dashboard presenter.
func startRunCmd(ref *programRef, ctx context.Context, session orchestration.Session, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		presenter := &TUIResultPresenter{ref: ref}
		observer := &TUIObserver{ref: ref}
		if session.Options.Observer != nil {
			session.Options.Observer = orchestration.MultiObserver{session.Options.Observer, observer}
		} else {
			session.Options.Observer = observer
		}

		results, err := session.Execute(ctx)

		presOpts := orchestration.PresentationOptions{Verbose: cfg.Verbose, Details: cfg.Details}
		var exitCode int
		switch {
		case len(results) > 1:
			exitCode = orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)
		case err != nil:
			exitCode = presenter.HandleError(err, io.Discard)
		default:
			presenter.PresentResult(results[0], presOpts, io.Discard)
			exitCode = apperrors.ExitSuccess
		}
		return RunCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after sampleInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
