package memtop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memtop/memtop/pkg/types"
)

var t0 = time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

func sample(pid int, rss uint64, cmd string, at time.Time) Sample {
	return Sample{PID: pid, RSS: types.KiloBytes(rss), Cmdline: cmd, At: at}
}

func TestTracker_MergeEmptyRoundIsNoop(t *testing.T) {
	tr := NewTracker(5, t0)
	tr.Apply([]Sample{
		sample(1, 100, "a", t0),
		sample(2, 200, "b", t0),
	}, t0)

	before := tr.Top()
	peakBefore, peakAtBefore := tr.Peak()

	tr.Apply(nil, t0.Add(10*time.Second))

	assert.Equal(t, before, tr.Top())
	peakAfter, peakAtAfter := tr.Peak()
	assert.Equal(t, peakBefore, peakAfter)
	assert.Equal(t, peakAtBefore, peakAtAfter)
}

func TestTracker_NewSampleOverwritesOld(t *testing.T) {
	tr := NewTracker(5, t0)
	tr.Apply([]Sample{sample(7, 100, "old", t0)}, t0)

	t1 := t0.Add(10 * time.Second)
	tr.Apply([]Sample{sample(7, 300, "new", t1)}, t1)

	top := tr.Top()
	require.Len(t, top, 1)
	assert.Equal(t, types.KiloBytes(300), top[0].RSS)
	assert.Equal(t, "new", top[0].Cmdline)
	assert.Equal(t, t1, top[0].At)
}

func TestTracker_BoundedToMaxLines(t *testing.T) {
	tr := NewTracker(3, t0)
	tr.Apply([]Sample{
		sample(1, 10, "a", t0),
		sample(2, 50, "b", t0),
		sample(3, 30, "c", t0),
		sample(4, 40, "d", t0),
		sample(5, 20, "e", t0),
	}, t0)

	top := tr.Top()
	require.Len(t, top, 3)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{2, 4, 3}, []int{top[0].PID, top[1].PID, top[2].PID})

	// truncated entries are really gone: a later small update cannot
	// resurrect them ahead of the survivors
	tr.Apply(nil, t0.Add(time.Second))
	assert.Len(t, tr.Top(), 3)
}

func TestTracker_SortDescendingTiesByPID(t *testing.T) {
	tr := NewTracker(5, t0)
	tr.Apply([]Sample{
		sample(30, 100, "x", t0),
		sample(10, 100, "y", t0),
		sample(20, 200, "z", t0),
	}, t0)

	top := tr.Top()
	require.Len(t, top, 3)
	assert.Equal(t, []int{20, 10, 30}, []int{top[0].PID, top[1].PID, top[2].PID})
}

func TestTracker_PeakTracksFreshRoundTotals(t *testing.T) {
	tr := NewTracker(10, t0)

	t1 := t0.Add(10 * time.Second)
	t2 := t1.Add(10 * time.Second)

	tr.Apply([]Sample{sample(1, 60, "a", t0), sample(2, 40, "b", t0)}, t0) // total 100
	peak, at := tr.Peak()
	assert.Equal(t, types.KiloBytes(100), peak)
	assert.Equal(t, t0, at)

	tr.Apply([]Sample{sample(1, 200, "a", t1), sample(3, 100, "c", t1)}, t1) // total 300
	peak, at = tr.Peak()
	assert.Equal(t, types.KiloBytes(300), peak)
	assert.Equal(t, t1, at)

	// a lean round must not lower the peak, even though the merged set
	// still sums higher than the fresh total
	tr.Apply([]Sample{sample(4, 50, "d", t2)}, t2)
	peak, at = tr.Peak()
	assert.Equal(t, types.KiloBytes(300), peak)
	assert.Equal(t, t1, at)
}

func TestTracker_PeakIsFreshTotalNotMergedTotal(t *testing.T) {
	tr := NewTracker(10, t0)
	t1 := t0.Add(10 * time.Second)

	tr.Apply([]Sample{sample(1, 100, "a", t0)}, t0)
	tr.Apply([]Sample{sample(2, 90, "b", t1)}, t1)

	// merged set holds 190 but no single round sampled more than 100
	peak, at := tr.Peak()
	assert.Equal(t, types.KiloBytes(100), peak)
	assert.Equal(t, t0, at)
}

func TestTracker_StaleEntryPersistsUntilDisplaced(t *testing.T) {
	tr := NewTracker(2, t0)
	t1 := t0.Add(10 * time.Second)
	t2 := t1.Add(10 * time.Second)

	// pid 1 dominates, then disappears (process exited)
	tr.Apply([]Sample{sample(1, 1000, "gone", t0), sample(2, 100, "b", t0)}, t0)
	tr.Apply([]Sample{sample(2, 110, "b", t1)}, t1)

	top := tr.Top()
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].PID, "exited process stays until displaced")

	// a bigger fresh entry finally pushes it out
	tr.Apply([]Sample{sample(3, 2000, "c", t2), sample(2, 120, "b", t2)}, t2)
	top = tr.Top()
	require.Len(t, top, 2)
	assert.Equal(t, []int{3, 1}, []int{top[0].PID, top[1].PID})
}

func TestTracker_MinimumOneLine(t *testing.T) {
	tr := NewTracker(0, t0)
	tr.Apply([]Sample{sample(1, 10, "a", t0), sample(2, 20, "b", t0)}, t0)
	assert.Equal(t, 1, tr.Len())
}
