// Package proc provides lightweight, zero-dependency readers for the Linux
// procfs pieces this tool needs: pid enumeration, per-pid smaps summaries
// and command lines.
//
// All readers take the procfs root as an explicit argument (DefaultRoot is
// "/proc") so tests can run against a fixture directory tree. Per-pid reads
// are single best-effort attempts; a process can disappear between
// enumeration and read, and callers are expected to treat such failures as
// "no data this round" rather than fatal.
//
// The smaps parser is deliberately tolerant: it recognises lines of the
// form "Field: N kB" for a fixed set of fields, sums them across mapping
// blocks, and ignores everything else (mapping headers, VmFlags, fields
// added by newer kernels).
package proc
