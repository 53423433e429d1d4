//go:build linux

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/memtop/memtop/pkg/config"
	"github.com/memtop/memtop/pkg/memtop"
	"github.com/memtop/memtop/pkg/system/proc"
	"github.com/memtop/memtop/pkg/system/util"
)

type opts struct {
	runtime  int
	maxlen   int
	maxlines int
	refresh  int
	write    string
	pattern  string
	config   string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "memtop",
		Short: "Report the top memory-consuming processes",
		Long: `memtop periodically samples per-process memory usage from /proc/<pid>/smaps
and reports the top N resident-memory consumers over an observation window,
along with the peak total seen since start.

Each round it enumerates /proc, aggregates every process's smaps mapping
blocks into per-category totals, merges the results into a bounded top-N
working set, and prints one line per tracked process. Snapshots can be
persisted atomically to a file, optionally rotated with a strftime suffix.

Examples:
  memtop
  memtop -n 10 -r 5
  memtop -t 60 -w /var/tmp/memtop -f -%Y%m%d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	root.Flags().IntVarP(&o.runtime, "runtime", "t", -1, "observation window in minutes (negative = run forever)")
	root.Flags().IntVarP(&o.maxlen, "maxlen", "l", 80, "output line truncation width in characters")
	root.Flags().IntVarP(&o.maxlines, "maxlines", "n", 30, "number of processes to track and print")
	root.Flags().IntVarP(&o.refresh, "refresh", "r", 10, "sampling cadence in seconds")
	root.Flags().StringVarP(&o.write, "write", "w", "", "write a snapshot to this path prefix every round")
	root.Flags().StringVarP(&o.pattern, "wstrftime", "f", "", "strftime suffix appended to the write path each round")
	root.Flags().StringVar(&o.config, "config", "", "config file (default: $XDG_CONFIG_HOME/memtop/config.toml)")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, o opts) error {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}
	if cfg.RefreshSeconds <= 0 {
		return fmt.Errorf("refresh must be > 0")
	}
	if cfg.MaxLines <= 0 {
		return fmt.Errorf("maxlines must be > 0")
	}
	if cfg.MaxLineLength <= 0 {
		return fmt.Errorf("maxlen must be > 0")
	}

	host, kernel, cpus, mem := util.SystemSummary()
	fmt.Printf(_console, host, kernel, cpus, mem, time.Now().Format(memtop.TimeLayout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := memtop.NewRunner(memtop.Config{
		Root:         proc.DefaultRoot,
		Refresh:      time.Duration(cfg.RefreshSeconds) * time.Second,
		Runtime:      time.Duration(cfg.RuntimeMinutes) * time.Minute,
		MaxLines:     cfg.MaxLines,
		MaxLen:       cfg.MaxLineLength,
		WritePath:    cfg.WritePath,
		WritePattern: cfg.WriteStrftime,
		Out:          os.Stdout,
	})
	return runner.Run(ctx)
}

// loadConfig merges the config file under the flags: a flag the user set
// explicitly always wins, everything else falls back to the file values
// (which themselves default sensibly when no file exists).
func loadConfig(cmd *cobra.Command, o opts) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.config != "" {
		cfg, err = config.LoadFromFile(o.config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("runtime") {
		cfg.RuntimeMinutes = o.runtime
	}
	if flags.Changed("maxlen") {
		cfg.MaxLineLength = o.maxlen
	}
	if flags.Changed("maxlines") {
		cfg.MaxLines = o.maxlines
	}
	if flags.Changed("refresh") {
		cfg.RefreshSeconds = o.refresh
	}
	if flags.Changed("write") {
		cfg.WritePath = o.write
	}
	if flags.Changed("wstrftime") {
		cfg.WriteStrftime = o.pattern
	}
	return cfg, nil
}

const _console = `memtop - Top Memory Consumers

       Host: %s
       Kernel: %s
       CPUs: %s
       Mem: %s

memtop report as of %s:

`
