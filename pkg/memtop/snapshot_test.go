package memtop

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotTracker(start time.Time) *Tracker {
	tr := NewTracker(3, start)
	tr.Apply([]Sample{
		sample(1, 4096, "/usr/bin/one", start),
		sample(2, 1024, "/usr/bin/two", start),
	}, start)
	return tr
}

func TestWriteSnapshot_ContentMatchesRender(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	tr := snapshotTracker(start)

	path := filepath.Join(t.TempDir(), "memtop.out")
	require.NoError(t, writeSnapshot(path, "", tr, 80, start))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, Render(&want, tr, 80))
	assert.Equal(t, want.String(), string(got))
}

func TestWriteSnapshot_StrftimeSuffixRotates(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	tr := snapshotTracker(start)

	dir := t.TempDir()
	prefix := filepath.Join(dir, "memtop")
	require.NoError(t, writeSnapshot(prefix, "-%Y%m%d", tr, 80, start))

	_, err := os.Stat(filepath.Join(dir, "memtop-20260830"))
	require.NoError(t, err)

	// next day's round lands in a fresh file
	require.NoError(t, writeSnapshot(prefix, "-%Y%m%d", tr, 80, start.AddDate(0, 0, 1)))
	_, err = os.Stat(filepath.Join(dir, "memtop-20260831"))
	require.NoError(t, err)
}

func TestWriteSnapshot_MissingDirIsFatal(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	tr := snapshotTracker(start)

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "memtop.out")
	err := writeSnapshot(path, "", tr, 80, start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestWriteSnapshot_NoPartialFileOnOverwrite(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	tr := snapshotTracker(start)

	path := filepath.Join(t.TempDir(), "memtop.out")
	require.NoError(t, os.WriteFile(path, []byte("previous full snapshot\n"), 0o644))
	require.NoError(t, writeSnapshot(path, "", tr, 80, start))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "previous")
}
