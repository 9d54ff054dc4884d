package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/primecount/internal/cli"
	"github.com/agbru/primecount/internal/config"
	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/predicate"
	"github.com/agbru/primecount/internal/tui"
	"github.com/agbru/primecount/internal/ui"
)

// Application represents the primecount application instance.
type Application struct {
	Config    config.AppConfig
	Predicate predicate.Func
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithPredicate replaces the primality test evaluated by the workers.
func WithPredicate(f predicate.Func) AppOption {
	return func(a *Application) { a.Predicate = f }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Predicate == nil {
		app.Predicate = predicate.IsPrime
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "primecount")
	}

	programName := "primecount"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if level, err := logging.ParseLevel(a.Config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	session, err := a.newSession()
	if err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter, ui.ColorProvider{})
	}
	if a.Config.ConfigFile != "" {
		a.Logger.Info("configuration file loaded", logging.String("path", a.Config.ConfigFile))
	}

	if a.Config.TUI {
		return a.runTUI(ctx, session)
	}
	return a.runCalculate(ctx, session, out)
}

// newSession resolves the worker count and the policies to run.
func (a *Application) newSession() (orchestration.Session, error) {
	workers, err := orchestration.ResolveWorkerCount(a.Config.Workers)
	if err != nil {
		return orchestration.Session{}, err
	}
	opts := orchestration.Options{
		N:           a.Config.N,
		Workers:     workers,
		Predicate:   a.Predicate,
		MergeOnJoin: a.Config.MergeOnJoin,
	}
	return orchestration.NewSession(opts, a.Config.Policy, a.Config.Repeat)
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context, session orchestration.Session) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	session.Options.Observer = orchestration.LoggingObserver{Logger: a.Logger}
	return tui.Run(ctx, session, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// presentationOptions maps the configuration onto the display options.
func (a *Application) presentationOptions() orchestration.PresentationOptions {
	return orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
		List:    a.Config.List,
	}
}

// outputConfig builds the CLI output settings.
func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile:   a.Config.OutputFile,
		Presentation: a.presentationOptions(),
	}
}
