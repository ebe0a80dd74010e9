package ports

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// DocumentStore defines the interface for reading and writing the SSH config file.
type DocumentStore interface {
	// Read returns the whole file content.
	// It returns an error wrapping domain.ErrConfigNotFound when path does not exist.
	Read(path string) (string, error)

	// Write replaces the file content, keeping the file's permission bits.
	Write(path, content string) error
}
