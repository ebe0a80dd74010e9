package ports

// Terminal reports whether an interactive prompt can be shown.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type Terminal interface {
	Interactive() bool
}
