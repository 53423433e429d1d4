// Package memtop implements the sampling loop and bounded top-N tracking of
// per-process resident memory: scanning procfs each round, merging rounds
// into a working set, tracking the historical peak, and rendering and
// persisting the per-round report.
package memtop

import (
	"sort"
	"time"

	"github.com/memtop/memtop/pkg/types"
)

// Sample is one process observation from one sampling round.
type Sample struct {
	PID     int
	RSS     types.KiloBytes
	Cmdline string
	At      time.Time
}

// Tracker owns the bounded top-N working set and the historical peak.
// It is updated only by the loop driver; there is exactly one logical actor,
// so no locking.
type Tracker struct {
	maxLines int
	set      map[int]Sample
	sorted   []Sample
	peak     types.KiloBytes
	peakAt   time.Time
	started  time.Time
}

// NewTracker returns an empty tracker bounded to maxLines entries.
func NewTracker(maxLines int, started time.Time) *Tracker {
	if maxLines < 1 {
		maxLines = 1
	}
	return &Tracker{
		maxLines: maxLines,
		set:      make(map[int]Sample),
		peakAt:   started,
		started:  started,
	}
}

// Apply merges one round of fresh samples into the working set.
//
// The peak compares against the sum of the fresh samples only, not the
// merged set, and its timestamp is the moment the round's enumeration began.
// Merged entries are re-sorted descending by RSS (ties by pid for stable
// output) and truncated to maxLines. An entry for a process that has exited
// is not actively purged; it stays until displaced by a fresher, larger one.
func (t *Tracker) Apply(fresh []Sample, at time.Time) {
	var total types.KiloBytes
	for _, s := range fresh {
		total += s.RSS
	}
	if total > t.peak {
		t.peak = total
		t.peakAt = at
	}

	for _, s := range fresh {
		t.set[s.PID] = s
	}

	all := make([]Sample, 0, len(t.set))
	for _, s := range t.set {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].RSS != all[j].RSS {
			return all[i].RSS > all[j].RSS
		}
		return all[i].PID < all[j].PID
	})
	if len(all) > t.maxLines {
		all = all[:t.maxLines]
	}

	t.set = make(map[int]Sample, len(all))
	for _, s := range all {
		t.set[s.PID] = s
	}
	t.sorted = all
}

// Top returns the working set in display order, largest RSS first.
func (t *Tracker) Top() []Sample {
	out := make([]Sample, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// Peak returns the largest fresh-round total seen so far and when it was
// recorded. Monotonically non-decreasing for the life of the tracker.
func (t *Tracker) Peak() (types.KiloBytes, time.Time) {
	return t.peak, t.peakAt
}

// Since returns the tracker's start timestamp.
func (t *Tracker) Since() time.Time { return t.started }

// Len returns the number of tracked entries.
func (t *Tracker) Len() int { return len(t.sorted) }
