package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/primecount/internal/cli"
	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/ui"
)

// runCalculate orchestrates the execution of the CLI counting command.
func (a *Application) runCalculate(ctx context.Context, session orchestration.Session, out io.Writer) int {
	cfg := a.Config
	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, session.Options.Workers, session.Policies, out)
	}

	registry := metrics.NewRegistry()
	label := strings.ToLower(strings.TrimSpace(cfg.Policy))
	observers := orchestration.MultiObserver{
		orchestration.LoggingObserver{Logger: a.Logger},
		registry.WorkerObserver(),
	}

	var display *cli.ProgressDisplay
	if !cfg.Quiet {
		display = cli.NewProgressDisplay(label, session.Options.Workers*session.Runs(), out)
		observers = append(observers, display)
	}
	session.Options.Observer = observers

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	if display != nil {
		display.Start()
	}
	results, err := session.Execute(ctx)
	if display != nil {
		display.Stop()
	}
	after := collector.Snapshot()

	for _, res := range results {
		registry.ObserveRun(res.Policy.String(), res.MatchCount, res.Elapsed, res.Err)
		a.Logger.Info("run finished",
			logging.String("run", res.Label),
			logging.Int("matches", res.MatchCount),
			logging.Duration("elapsed", res.Elapsed))
	}

	exitCode := a.analyzeResults(results, err, out)

	if cfg.Details && !cfg.Quiet && exitCode == apperrors.ExitSuccess {
		cli.DisplayMemoryStats(metrics.Delta(before, after), out)
	}
	if cfg.MetricsFile != "" {
		if werr := registry.WriteTextfile(cfg.MetricsFile); werr != nil {
			a.Logger.Error("failed to write metrics", werr, logging.String("path", cfg.MetricsFile))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}
	return exitCode
}

// analyzeResults presents the outcome of the session and returns the exit
// code. Errors go to ErrWriter in quiet mode so that stdout only ever
// carries the count.
func (a *Application) analyzeResults(results []orchestration.Result, err error, out io.Writer) int {
	errOut := out
	if a.Config.Quiet {
		errOut = a.ErrWriter
	}

	if len(results) <= 1 {
		if err != nil {
			return apperrors.HandleRunError(err, errOut, ui.ColorProvider{})
		}
		return a.saveAndDisplay(results[0], out)
	}

	tableOut := out
	if a.Config.Quiet {
		tableOut = io.Discard
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, a.presentationOptions(), cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, tableOut)
	if exitCode != apperrors.ExitSuccess {
		if a.Config.Quiet {
			apperrors.HandleRunError(firstError(results, err), errOut, nil)
		}
		return exitCode
	}

	// Results are sorted fastest first once analyzed.
	best := results[0]
	if a.Config.Quiet {
		return a.saveAndDisplay(best, out)
	}
	if a.Config.OutputFile != "" {
		if werr := cli.WriteMatchesToFile(best, a.Config.OutputFile); werr != nil {
			return apperrors.HandleRunError(werr, errOut, ui.ColorProvider{})
		}
		c := ui.ColorProvider{}
		fmt.Fprintf(out, "\n%s✓ Matches saved to: %s%s%s\n", c.Green(), c.Cyan(), a.Config.OutputFile, c.Reset())
	}
	return apperrors.ExitSuccess
}

// saveAndDisplay prints a single result and writes the output file.
func (a *Application) saveAndDisplay(res orchestration.Result, out io.Writer) int {
	if err := cli.DisplayResultWithConfig(out, res, a.outputConfig()); err != nil {
		a.Logger.Error("failed to save matches", err, logging.String("path", a.Config.OutputFile))
		return apperrors.HandleRunError(err, a.ErrWriter, nil)
	}
	return apperrors.ExitSuccess
}

func firstError(results []orchestration.Result, err error) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return err
}
