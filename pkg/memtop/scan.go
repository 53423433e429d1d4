package memtop

import (
	"time"

	"github.com/memtop/memtop/pkg/system/proc"
)

// Scan collects one round of samples from the procfs tree at root.
//
// Every per-pid read is an independent best-effort attempt: a process that
// vanished between enumeration and read, or whose files are unreadable, is
// silently dropped for this round without affecting any other pid. Processes
// with zero resident memory are never tracked. The only error returned is a
// failure to list the procfs root itself.
func Scan(root string, now time.Time) ([]Sample, error) {
	pids, err := proc.ListPIDs(root)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, 0, len(pids))
	for _, pid := range pids {
		sum, err := proc.ReadSmaps(root, pid)
		if err != nil {
			continue
		}
		rss := sum.Rss()
		if rss == 0 {
			continue
		}
		cmd, err := proc.ReadCmdline(root, pid)
		if err != nil {
			continue
		}
		samples = append(samples, Sample{PID: pid, RSS: rss, Cmdline: cmd, At: now})
	}
	return samples, nil
}
