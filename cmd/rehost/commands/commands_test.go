package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rehost/cmd/rehost/commands"
	"go.trai.ch/rehost/internal/app"
	"go.trai.ch/rehost/internal/build"
	"go.trai.ch/rehost/internal/core/domain"
)

type mockApp struct {
	runFunc  func(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	listFunc func(ctx context.Context, opts app.ListOptions) (*app.Listing, error)
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*domain.Report, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return &domain.Report{}, nil
}

func (m *mockApp) List(ctx context.Context, opts app.ListOptions) (*app.Listing, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return &app.Listing{}, nil
}

func sampleListing() *app.Listing {
	return &app.Listing{
		Path:  "/home/user/.ssh/config",
		Found: true,
		Groups: []app.ListGroup{
			{Name: "db", Entries: []app.ListEntry{{Line: 4, Host: "db.internal", Command: "aws-ip db"}}},
			{Name: "web", Entries: []app.ListEntry{
				{Line: 2, Host: "10.0.0.1", Command: "aws-ip web-1"},
				{Line: 6, Host: "10.0.0.3", Command: "aws-ip web-2"},
			}},
		},
		Orphans: []domain.Orphan{{Name: "lost", Line: 6}},
	}
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				return &domain.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"-f", "/tmp/config", "--name", "web", "--dry-run",
			"--shell", "/bin/bash", "--log-format", "json",
			"--metrics-file", "/tmp/rehost.prom", "--settings", "/tmp/rehost.toml",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{
			File:         "/tmp/config",
			Name:         "web",
			DryRun:       true,
			Shell:        "/bin/bash",
			LogFormat:    "json",
			MetricsFile:  "/tmp/rehost.prom",
			SettingsPath: "/tmp/rehost.toml",
		}, captured)
	})

	t.Run("all flag", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				return &domain.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-a"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.All)
	})

	t.Run("name and all are mutually exclusive", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--name", "web", "--all"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none of the others can be")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"web"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_List(t *testing.T) {
	var captured app.ListOptions
	mock := &mockApp{
		listFunc: func(_ context.Context, opts app.ListOptions) (*app.Listing, error) {
			captured = opts
			return sampleListing(), nil
		},
	}

	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"list", "--file", "/tmp/config", "--settings", "/tmp/rehost.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.ListOptions{File: "/tmp/config", SettingsPath: "/tmp/rehost.yaml"}, captured)

	g := goldie.New(t)
	g.Assert(t, "list", out.Bytes())
}

func TestRenderListing_Empty(t *testing.T) {
	out := new(bytes.Buffer)
	require.NoError(t, commands.RenderListing(out, &app.Listing{Path: "/home/user/.ssh/config", Found: true}))

	g := goldie.New(t)
	g.Assert(t, "list_empty", out.Bytes())
}

func TestRenderListing_NotFound(t *testing.T) {
	out := new(bytes.Buffer)
	require.NoError(t, commands.RenderListing(out, &app.Listing{Path: "/missing"}))

	assert.Empty(t, out.String())
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "rehost version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
