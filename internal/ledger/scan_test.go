package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	files := []string{"2020-02", "2019-12", "2020-01", "README.md", "2020-13", "notes.txt", ".pledger-chart.yaml"}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("D 1.00 x\n"), 0o644))
	}
	// A directory with a period-shaped name is not a ledger file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2021-01"), 0o755))

	periods, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"2019-12", "2020-01", "2020-02"}, periods)
}

func TestScan_Empty(t *testing.T) {
	periods, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, periods, "a directory with no ledgers is not an error")
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ledger dir")
}
