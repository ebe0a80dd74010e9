package ports

import "context"

// Resolver defines the interface for turning a directive command into a HostName value.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve runs command through shell and returns its trimmed standard output.
	//
	// It returns an error wrapping domain.ErrCommandFailed when the command
	// cannot be started or exits non-zero, and one wrapping domain.ErrEmptyResult when
	// the trimmed output is empty.
	Resolve(ctx context.Context, shell, command string) (string, error)
}
