package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultRoot is the procfs mount point on a normal system. Every reader
// takes the root explicitly so tests can point it at a fixture tree.
const DefaultRoot = "/proc"

// ListPIDs returns the pids of all processes visible under root, i.e. the
// directory entries whose names consist entirely of decimal digits. Kernel
// pseudo-files (meminfo, stat, ...) are skipped by the numeric filter.
func ListPIDs(root string) ([]int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoProc, root, err)
	}
	var pids []int
	for _, e := range entries {
		if pid, err := strconv.Atoi(e.Name()); err == nil && pid > 0 {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// ReadCmdline returns the command line of a process with the embedded NUL
// separators replaced by spaces and trailing whitespace trimmed. The result
// may be empty (kernel threads expose an empty cmdline file); an unreadable
// file is an error for the caller to handle.
func ReadCmdline(root string, pid int) (string, error) {
	if pid <= 0 {
		return "", fmt.Errorf("%w: %d", ErrBadPID, pid)
	}
	b, err := os.ReadFile(filepath.Join(root, strconv.Itoa(pid), "cmdline"))
	if err != nil {
		return "", fmt.Errorf("proc: cmdline for pid %d: %w", pid, err)
	}
	s := strings.ReplaceAll(string(b), "\x00", " ")
	return strings.TrimRight(s, " \t\n"), nil
}

// Exists reports whether a given pid currently has a directory under root.
func Exists(root string, pid int) bool {
	_, err := os.Stat(filepath.Join(root, strconv.Itoa(pid)))
	return err == nil
}
