package port

import "context"

// ExtractSourcePort reads raw tabular extract files. Each row arrives as a
// header-name→value map with the source's native-language headers; the second
// metadata row of every file is already skipped by the adapter.
type ExtractSourcePort interface {
	// List expands a glob pattern into concrete file paths.
	List(pattern string) ([]string, error)

	// ReadRows streams one file, calling fn per data row. A non-nil error
	// from fn stops the read and is returned as-is.
	ReadRows(ctx context.Context, path string, fn func(row map[string]string) error) error
}
