package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rehost/internal/app"
	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/rehost/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"rehost": mainRun,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".ssh"), 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
	return nil
}

type testMocks struct {
	app      *app.App
	store    *mocks.MockDocumentStore
	settings *mocks.MockSettingsLoader
	logger   *mocks.MockLogger
}

func newTestMocks(t *testing.T) *testMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		store:    mocks.NewMockDocumentStore(ctrl),
		settings: mocks.NewMockSettingsLoader(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.app = app.New(
		m.store,
		mocks.NewMockResolver(ctrl),
		mocks.NewMockSelector(ctrl),
		mocks.NewMockTerminal(ctrl),
		m.settings,
		mocks.NewMockMetrics(ctrl),
		m.logger,
	)
	return m
}

func (m *testMocks) provider(context.Context) (*app.Components, func(), error) {
	return &app.Components{App: m.app, Logger: m.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	m := newTestMocks(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), m.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "rehost version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	m := newTestMocks(t)
	m.settings.EXPECT().Load("").Return(domain.Settings{}, domain.ErrSettingsParseFailed)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrSettingsParseFailed)
	})

	exitCode := run(context.Background(), []string{"--all"}, new(bytes.Buffer), new(bytes.Buffer), m.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_NoOpOutcomesExitZero verifies that a missing config is not a failure.
func TestRun_NoOpOutcomesExitZero(t *testing.T) {
	m := newTestMocks(t)
	m.settings.EXPECT().Load("").Return(domain.Settings{SSHConfig: "/missing", LogFormat: domain.LogFormatPretty}, nil)
	m.store.EXPECT().Read("/missing").Return("", domain.ErrConfigNotFound)
	m.logger.EXPECT().Warn("config file not found: /missing")

	exitCode := run(context.Background(), []string{"--all"}, new(bytes.Buffer), new(bytes.Buffer), m.provider)

	assert.Equal(t, 0, exitCode)
}

// TestRun_Interrupted verifies that a cancelled context ends the run without error.
func TestRun_Interrupted(t *testing.T) {
	m := newTestMocks(t)
	m.settings.EXPECT().Load("").Return(domain.Settings{SSHConfig: "/cfg", LogFormat: domain.LogFormatPretty}, nil)
	m.logger.EXPECT().Warn("interrupted, nothing written")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"--all"}, new(bytes.Buffer), new(bytes.Buffer), m.provider)

	assert.Equal(t, 0, exitCode)
}

// TestRun_AppliesOptions verifies that options are applied to the App before execution.
func TestRun_AppliesOptions(t *testing.T) {
	m := newTestMocks(t)
	called := false

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), m.provider,
		func(*app.App) { called = true })

	assert.Equal(t, 0, exitCode)
	assert.True(t, called)
}
