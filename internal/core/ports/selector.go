package ports

import "context"

// Selector defines the interface for picking one directive name out of many.
//
//go:generate mockgen -source=selector.go -destination=mocks/mock_selector.go -package=mocks
type Selector interface {
	// Select presents names and returns the chosen one.
	// It returns domain.ErrSelectionCancelled when the user aborts.
	Select(ctx context.Context, names []string) (string, error)
}
