// Package progress counts the candidates a filter stage has checked and kept,
// and mirrors the counts on a terminal bar.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
)

const updateInterval = 50 * time.Millisecond

// Stage tracks one filter stage. Counting always happens; rendering only
// when enabled. Safe for concurrent use.
type Stage struct {
	name    string
	total   int
	checked atomic.Int64
	kept    atomic.Int64
	start   time.Time

	bar *progressbar.ProgressBar // nil when rendering is disabled
	out io.Writer
}

// NewStage creates a stage rendering to stderr. See NewStageWriter.
func NewStage(name string, total int, enabled bool) *Stage {
	return NewStageWriter(os.Stderr, name, total, enabled)
}

// NewStageWriter creates a stage of total candidates rendering to w.
func NewStageWriter(w io.Writer, name string, total int, enabled bool) *Stage {
	s := &Stage{name: name, total: total, start: time.Now(), out: w}
	if !enabled {
		return s
	}

	s.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(updateInterval),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(s.String()),
	)
	return s
}

// Record counts one checked candidate.
func (s *Stage) Record(kept bool) {
	if kept {
		s.kept.Add(1)
	}
	n := s.checked.Add(1)
	if s.bar != nil {
		_ = s.bar.Set64(n)
		s.bar.Describe(s.String())
	}
}

// Checked returns the number of candidates recorded so far.
func (s *Stage) Checked() int { return int(s.checked.Load()) }

// Kept returns the number of recorded candidates that survived.
func (s *Stage) Kept() int { return int(s.kept.Load()) }

func (s *Stage) String() string {
	return fmt.Sprintf("%s: checked %d/%d, kept %d in %.1fs",
		s.name, s.checked.Load(), s.total, s.kept.Load(),
		time.Since(s.start).Seconds())
}

// Finish clears the bar and prints the stage summary.
func (s *Stage) Finish() {
	if s.bar != nil {
		_ = s.bar.Finish()
		fmt.Fprintln(s.out, "✔ "+s.String())
	}
}
