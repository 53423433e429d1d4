package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/memtop/memtop/pkg/types"
)

// Summary maps a memory category name to its aggregated size in kilobytes.
type Summary map[string]types.KiloBytes

// Rss returns the resident set size of the summary.
func (s Summary) Rss() types.KiloBytes { return s["Rss"] }

// summable fields are reported once per mapping block and added up across
// blocks; the page size fields appear with every block but are constant,
// so the last value wins.
var summableFields = map[string]bool{
	"Rss":           true,
	"Pss":           true,
	"Shared_Clean":  true,
	"Shared_Dirty":  true,
	"Private_Clean": true,
	"Private_Dirty": true,
	"Referenced":    true,
	"Swap":          true,
	"Size":          true,
}

var singletonFields = map[string]bool{
	"KernelPageSize": true,
	"MMUPageSize":    true,
}

// ReadSmaps parses <root>/<pid>/smaps and returns the per-category totals
// summed over all mapping blocks. A process with no parseable content yields
// an all-zero Summary; callers treat that the same as "nothing resident".
// The read is a single best-effort attempt, no retry.
func ReadSmaps(root string, pid int) (Summary, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPID, pid)
	}
	f, err := os.Open(filepath.Join(root, strconv.Itoa(pid), "smaps"))
	if err != nil {
		return nil, fmt.Errorf("proc: smaps for pid %d: %w", pid, err)
	}
	defer f.Close()
	return parseSmaps(f)
}

// parseSmaps accumulates "Field: N kB" lines into a Summary. Anything that
// does not match the field grammar (mapping headers, VmFlags, unknown
// fields, garbage) is skipped, not an error.
func parseSmaps(r io.Reader) (Summary, error) {
	sum := make(Summary, len(summableFields)+len(singletonFields))
	for name := range summableFields {
		sum[name] = 0
	}
	for name := range singletonFields {
		sum[name] = 0
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 || fields[2] != "kB" {
			continue
		}
		name, ok := strings.CutSuffix(fields[0], ":")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch {
		case summableFields[name]:
			sum[name] += types.KiloBytes(v)
		case singletonFields[name]:
			sum[name] = types.KiloBytes(v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("proc: scan smaps: %w", err)
	}
	return sum, nil
}
