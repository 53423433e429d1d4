package memtop

import (
	"fmt"
	"time"

	"github.com/google/renameio/v2"
	"github.com/lestrrat-go/strftime"
)

// writeSnapshot persists the rendered report to path, atomically: the
// content is written to a pending file in the same directory and renamed
// into place on commit, so a reader never observes a partial file.
//
// A non-empty pattern is expanded with strftime against now and appended to
// the path; since it is re-evaluated every round, a date-based pattern
// rotates the snapshot file. Any failure here is fatal for the caller: a
// misconfigured write target must not be silently ignored.
func writeSnapshot(path, pattern string, t *Tracker, maxLen int, now time.Time) error {
	if pattern != "" {
		suffix, err := strftime.Format(pattern, now)
		if err != nil {
			return fmt.Errorf("memtop: strftime pattern %q: %w", pattern, err)
		}
		path += suffix
	}
	f, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("memtop: open snapshot %s: %w", path, err)
	}
	defer f.Cleanup()
	if err := Render(f, t, maxLen); err != nil {
		return fmt.Errorf("memtop: write snapshot %s: %w", path, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("memtop: commit snapshot %s: %w", path, err)
	}
	return nil
}
