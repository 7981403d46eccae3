package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExtract(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a_lvr_land_a.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRowsSkipsMetadataRow(t *testing.T) {
	path := writeExtract(t, "\uFEFF鄉鎮市區,總價元\nThe villages,total price\n大安區,12500000\n板橋區,8000000\n")

	var rows []map[string]string
	r := NewReader(Options{})
	err := r.ReadRows(context.Background(), path, func(row map[string]string) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "大安區", rows[0]["鄉鎮市區"])
	assert.Equal(t, "12500000", rows[0]["總價元"])
	assert.Equal(t, "板橋區", rows[1]["鄉鎮市區"])
}

func TestReadRowsRaggedRows(t *testing.T) {
	path := writeExtract(t, "鄉鎮市區,總價元,備註\nmeta,meta,meta\n大安區,12500000\n")

	var rows []map[string]string
	r := NewReader(Options{})
	err := r.ReadRows(context.Background(), path, func(row map[string]string) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	_, hasRemarks := rows[0]["備註"]
	assert.False(t, hasRemarks)
}

func TestReadRowsHeaderOnly(t *testing.T) {
	path := writeExtract(t, "鄉鎮市區,總價元\n")

	r := NewReader(Options{})
	err := r.ReadRows(context.Background(), path, func(row map[string]string) error {
		t.Fatal("no data rows expected")
		return nil
	})
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("x"), 0o644))

	r := NewReader(Options{})
	files, err := r.List(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
