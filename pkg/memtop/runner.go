package memtop

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/memtop/memtop/pkg/system/proc"
)

// Config controls a Runner.
type Config struct {
	// Root is the procfs mount point; empty means proc.DefaultRoot.
	Root string

	// Refresh is the sampling cadence. A round that overruns it starts the
	// next round immediately, with no catch-up skipping.
	Refresh time.Duration

	// Runtime bounds the observation window. Negative runs forever. The
	// check happens at the top of each round; a round in progress always
	// completes.
	Runtime time.Duration

	// MaxLines bounds the working set.
	MaxLines int

	// MaxLen clips rendered lines.
	MaxLen int

	// WritePath, when non-empty, enables atomic snapshot persistence.
	// WritePattern is an optional strftime suffix re-evaluated every round.
	WritePath    string
	WritePattern string

	// Out receives the per-round report; nil means os.Stdout.
	Out io.Writer
}

// Runner drives the sampling loop: enumerate, collect, merge, render,
// persist, pace. Single-threaded and synchronous; the only suspension
// point is the end-of-round pacing sleep.
type Runner struct {
	cfg     Config
	tracker *Tracker

	// scan is swappable so tests can feed synthetic rounds.
	scan func(root string, now time.Time) ([]Sample, error)
}

// NewRunner returns a runner backed by the real procfs scanner.
func NewRunner(cfg Config) *Runner {
	if cfg.Root == "" {
		cfg.Root = proc.DefaultRoot
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Runner{cfg: cfg, scan: Scan}
}

// Run cycles rounds until the runtime window expires or ctx is cancelled.
// A scan failure (procfs root unreadable) or a snapshot write failure ends
// the run with that error; per-pid failures never surface here.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	r.tracker = NewTracker(r.cfg.MaxLines, start)

	for {
		if r.cfg.Runtime >= 0 && time.Since(start) > r.cfg.Runtime {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		roundStart := time.Now()
		if err := r.round(roundStart); err != nil {
			return err
		}

		if d := r.cfg.Refresh - time.Since(roundStart); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
}

func (r *Runner) round(at time.Time) error {
	samples, err := r.scan(r.cfg.Root, at)
	if err != nil {
		return err
	}
	r.tracker.Apply(samples, at)
	if err := Render(r.cfg.Out, r.tracker, r.cfg.MaxLen); err != nil {
		return err
	}
	if r.cfg.WritePath != "" {
		return writeSnapshot(r.cfg.WritePath, r.cfg.WritePattern, r.tracker, r.cfg.MaxLen, at)
	}
	return nil
}
