// Package progress renders sweep progress on stderr. The pairwise sweep is
// quadratic and can run for minutes on a full corpus export, so silence
// looks like a hang.
package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Sweep tracks outer-row completion of the clustering sweep. A nil *Sweep
// is valid and does nothing, so callers can disable progress by dropping
// the constructor call.
type Sweep struct {
	bar *progressbar.ProgressBar
}

// NewSweep returns a progress bar over total outer rows, writing to w.
func NewSweep(total int, w io.Writer) *Sweep {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("comparing"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &Sweep{bar: bar}
}

// Row records one completed outer row. Safe for concurrent use by sweep
// workers.
func (s *Sweep) Row() {
	if s == nil {
		return
	}
	_ = s.bar.Add(1)
}

// Finish clears the bar.
func (s *Sweep) Finish() {
	if s == nil {
		return
	}
	_ = s.bar.Finish()
}
