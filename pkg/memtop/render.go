package memtop

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/memtop/memtop/pkg/system/util"
)

// TimeLayout is the wall-clock format used in all rendered output.
const TimeLayout = "2006-01-02 15:04:05"

const separatorWidth = 50

// Render writes one round's report: a separator, one line per tracked
// process (largest first, clipped to maxLen), then the peak summary block.
func Render(w io.Writer, t *Tracker, maxLen int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Repeat("-", separatorWidth))
	for _, s := range t.Top() {
		line := fmt.Sprintf("%s %s %s", s.At.Format(TimeLayout), s.RSS, s.Cmdline)
		fmt.Fprintln(bw, util.Truncate(line, maxLen))
	}
	peak, peakAt := t.Peak()
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "max mem used: %s at: %s\n", peak, peakAt.Format(TimeLayout))
	fmt.Fprintf(bw, "since: %s\n", t.Since().Format(TimeLayout))
	return bw.Flush()
}
