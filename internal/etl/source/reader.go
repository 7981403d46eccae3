// Package source reads the raw government extract files. Each file carries a
// fixed native-language header row, then a second metadata row (the English
// column names) that is always skipped, then data rows. Files ship either in
// UTF-8 (often with a BOM) or in Big5.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

const utf8BOM = "\uFEFF"

// Options configures the reader for one ingestion run.
type Options struct {
	// Big5 decodes the file from Big5 before parsing. Default is UTF-8.
	Big5 bool
}

// Reader implements the extract-source capability over local files.
type Reader struct {
	opts Options
}

func NewReader(opts Options) *Reader {
	return &Reader{opts: opts}
}

// List expands a glob pattern into file paths.
func (r *Reader) List(pattern string) ([]string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	return files, nil
}

// ReadRows streams one file, calling fn for every data row as a header→value
// map. Rows narrower than the header keep the missing columns absent from the
// map; wider rows drop the excess. A non-nil error from fn aborts the read.
func (r *Reader) ReadRows(ctx context.Context, path string, fn func(row map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open extract %s: %w", path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if r.opts.Big5 {
		src = transform.NewReader(f, traditionalchinese.Big5.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // real-world extracts have ragged rows

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	// Second row holds the English column names, not data.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to skip metadata row of %s: %w", path, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read row of %s: %w", path, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
