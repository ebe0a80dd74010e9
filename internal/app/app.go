// Package app implements the application layer for rehost.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/rehost/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store    ports.DocumentStore
	resolver ports.Resolver
	selector ports.Selector
	terminal ports.Terminal
	settings ports.SettingsLoader
	metrics  ports.Metrics
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	store ports.DocumentStore,
	resolver ports.Resolver,
	selector ports.Selector,
	terminal ports.Terminal,
	settings ports.SettingsLoader,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		store:    store,
		resolver: resolver,
		selector: selector,
		terminal: terminal,
		settings: settings,
		metrics:  metrics,
		logger:   log,
	}
}

// WithSelector replaces the selection prompt.
func (a *App) WithSelector(selector ports.Selector) *App {
	a.selector = selector
	return a
}

// WithTerminal replaces the terminal detector.
func (a *App) WithTerminal(terminal ports.Terminal) *App {
	a.terminal = terminal
	return a
}

// RunOptions configuration for the Run method.
// Empty fields fall back to the environment, the settings file and the defaults.
type RunOptions struct {
	File         string
	Name         string
	All          bool
	DryRun       bool
	Shell        string
	LogFormat    string
	MetricsFile  string
	SettingsPath string
}

func (o RunOptions) overrides() domain.Settings {
	return domain.Settings{
		SSHConfig:   o.File,
		Shell:       o.Shell,
		LogFormat:   o.LogFormat,
		MetricsFile: o.MetricsFile,
	}
}

// Run refreshes the HostName lines of the SSH config. It returns a report for
// every run that completed, including no-op outcomes. An error is returned
// only for failures that must end the process unsuccessfully.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	settings, err := a.configure(opts.SettingsPath, opts.overrides())
	if err != nil {
		return nil, err
	}

	report, err := a.refresh(ctx, settings, opts)
	if err != nil {
		return nil, err
	}

	if settings.MetricsFile != "" {
		if err := a.metrics.Export(settings.MetricsFile, report); err != nil {
			a.logger.Error(err)
		}
	}
	return report, nil
}

// configure resolves the effective settings and applies the log format.
func (a *App) configure(settingsPath string, overrides domain.Settings) (domain.Settings, error) {
	settings, err := a.settings.Load(settingsPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}

	settings = settings.Merge(overrides)
	settings.SSHConfig = domain.ExpandHome(settings.SSHConfig)
	settings.MetricsFile = domain.ExpandHome(settings.MetricsFile)
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "invalid options"), "log_format", settings.LogFormat)
	}

	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(settings.LogFormat == domain.LogFormatJSON)
	}
	return settings, nil
}

//nolint:cyclop // state machine
func (a *App) refresh(ctx context.Context, settings domain.Settings, opts RunOptions) (*domain.Report, error) {
	report := &domain.Report{Path: settings.SSHConfig}

	// Loaded
	if ctx.Err() != nil {
		return a.interrupted(report), nil
	}
	original, err := a.store.Read(settings.SSHConfig)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			a.logger.Warn("config file not found: " + settings.SSHConfig)
			report.Outcome = domain.OutcomeConfigNotFound
			return report, nil
		}
		return nil, zerr.Wrap(err, "failed to load ssh config")
	}

	// Parsed
	doc := domain.NewDocument(original)
	parsed := domain.ParseTasks(doc.Lines)
	a.warnOrphans(parsed.Orphans)
	if len(parsed.Tasks) == 0 {
		a.logger.Info(domain.ErrNoDirectives.Error())
		report.Outcome = domain.OutcomeNoDirectives
		return report, nil
	}

	// Selected
	selected, err := a.selectTasks(ctx, parsed.Tasks, opts)
	switch {
	case ctx.Err() != nil:
		return a.interrupted(report), nil
	case errors.Is(err, domain.ErrSelectionCancelled):
		a.logger.Info("cancelled")
		report.Outcome = domain.OutcomeCancelled
		return report, nil
	case errors.Is(err, domain.ErrUnknownName):
		a.logger.Warn(fmt.Sprintf("no directive named %q, available: %s",
			opts.Name, strings.Join(domain.GroupByName(parsed.Tasks).Names(), ", ")))
		report.Outcome = domain.OutcomeCancelled
		return report, nil
	case err != nil:
		return nil, err
	case len(selected) == 0:
		a.logger.Info("cancelled")
		report.Outcome = domain.OutcomeCancelled
		return report, nil
	}

	// Executed
	updated := doc.Clone()
	for _, task := range domain.SortByTarget(selected) {
		if ctx.Err() != nil {
			return a.interrupted(report), nil
		}
		res := a.resolve(ctx, settings.Shell, task, updated)
		if res.Err != nil && ctx.Err() != nil {
			return a.interrupted(report), nil
		}
		report.Resolutions = append(report.Resolutions, res)
	}

	// Written
	if ctx.Err() != nil {
		return a.interrupted(report), nil
	}
	content := updated.Text()
	if content == original {
		a.logger.Info("no changes")
		report.Outcome = domain.OutcomeUnchanged
		return report, nil
	}
	if opts.DryRun {
		a.logger.Info("dry run, not writing " + settings.SSHConfig)
		report.Outcome = domain.OutcomeDryRun
		return report, nil
	}
	if err := a.store.Write(settings.SSHConfig, content); err != nil {
		return nil, zerr.Wrap(err, "failed to save ssh config")
	}
	a.logger.Info(fmt.Sprintf("wrote %s (%d updated, %d failed)", settings.SSHConfig, report.Updated(), report.Failed()))
	report.Outcome = domain.OutcomeWritten
	return report, nil
}

// selectTasks applies the --all and --name policies and falls back to the prompt.
func (a *App) selectTasks(ctx context.Context, tasks []domain.UpdateTask, opts RunOptions) ([]domain.UpdateTask, error) {
	groups := domain.GroupByName(tasks)

	switch {
	case opts.All:
		return tasks, nil
	case opts.Name != "":
		group, ok := groups[opts.Name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownName, "cannot select "+opts.Name), "name", opts.Name)
		}
		return group, nil
	case !a.terminal.Interactive():
		return nil, domain.ErrNoSelection
	}

	name, err := a.selector.Select(ctx, groups.Names())
	if err != nil {
		return nil, err
	}
	return groups[name], nil
}

// resolve runs one task and applies its value to doc on success.
func (a *App) resolve(ctx context.Context, shell string, task domain.UpdateTask, doc *domain.Document) domain.Resolution {
	start := time.Now()
	value, err := a.resolver.Resolve(ctx, shell, task.Command)
	res := domain.Resolution{Task: task, Value: value, Err: err, Duration: time.Since(start)}

	if err != nil {
		if ctx.Err() == nil {
			err = zerr.Wrap(err, "failed to refresh "+task.Name)
			err = zerr.With(err, "line", task.TargetLine+1)
			a.logger.Error(zerr.With(err, "command", task.Command))
		}
		return res
	}

	line := task.Rewrite(value)
	res.Changed = doc.Lines[task.TargetLine] != line
	doc.Lines[task.TargetLine] = line
	a.logger.Info(fmt.Sprintf("updated %s on line %d: %s", task.Name, task.TargetLine+1, value))
	return res
}

func (a *App) warnOrphans(orphans []domain.Orphan) {
	for _, o := range orphans {
		a.logger.Warn(fmt.Sprintf("directive %q on line %d is not followed by a HostName line", o.Name, o.Line+1))
	}
}

func (a *App) interrupted(report *domain.Report) *domain.Report {
	a.logger.Warn("interrupted, nothing written")
	report.Outcome = domain.OutcomeInterrupted
	return report
}
