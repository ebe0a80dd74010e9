// Package shell resolves directive commands by running them through a shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.Resolver using os/exec.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve runs `shell -c command` and returns its standard output with
// surrounding whitespace removed. The child inherits the environment and
// working directory, reads nothing from stdin and has its stderr captured.
func (r *Resolver) Resolve(ctx context.Context, shell, command string) (string, error) {
	if shell == "" {
		shell = domain.DefaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command) //nolint:gosec // command comes from the user's own ssh config

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			failure = zerr.With(failure, "stderr", msg)
		}
		return "", failure
	}

	value := strings.TrimSpace(stdout.String())
	if value == "" {
		return "", zerr.Wrap(domain.ErrEmptyResult, "nothing to write")
	}

	return value, nil
}
