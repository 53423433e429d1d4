package util

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// TruncateMarker is appended when a line is clipped to its maximum width.
const TruncateMarker = "+"

// Truncate clips s to at most max bytes. A string that already fits is
// returned unchanged; otherwise the result is the first max-1 bytes plus
// the marker, so the total is exactly max.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max-1] + TruncateMarker
}

// SystemSummary returns hostname, kernel version, logical CPU count and
// total physical memory for the startup header. Pieces that cannot be
// determined come back as "unknown" rather than failing.
func SystemSummary() (hostname, kernel, cpus, memory string) {
	hostname, kernel = "unknown", "unknown"
	if hi, err := host.Info(); err == nil {
		hostname = hi.Hostname
		kernel = hi.KernelVersion
	}
	cpus = fmt.Sprintf("%d", runtime.NumCPU())
	memory = "unknown"
	if vm, err := mem.VirtualMemory(); err == nil {
		memory = fmt.Sprintf("%.2f GiB", float64(vm.Total)/(1<<30))
	}
	return hostname, kernel, cpus, memory
}
