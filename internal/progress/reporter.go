// internal/progress/reporter.go
package progress

import (
	"fmt"
	"time"

	"github.com/bstardust/djicoords/internal/logger"
)

// Reporter tracks and reports batch progress
type Reporter struct {
	total          int
	processed      int
	skipped        int
	startTime      time.Time
	lastUpdateTime time.Time
	updateInterval time.Duration
	now            func() time.Time
}

// Summary is the outcome of a finished batch
type Summary struct {
	Total     int
	Processed int
	Skipped   int
	Duration  time.Duration
}

// Status renders the summary as the user-facing status line
func (s Summary) Status() string {
	return fmt.Sprintf("Processed %d photos", s.Processed)
}

// New creates a new progress reporter
func New() *Reporter {
	return &Reporter{
		updateInterval: 2 * time.Second,
		now:            time.Now,
	}
}

// Start initializes the progress reporter with the total number of files
func (r *Reporter) Start(total int) {
	r.total = total
	r.processed = 0
	r.skipped = 0
	r.startTime = r.now()
	r.lastUpdateTime = r.startTime

	logger.Info("Scanning %d photos", total)
}

// Complete marks a photo as written to the report
func (r *Reporter) Complete(path string) {
	r.processed++
	r.updateProgress()
}

// Skip marks a photo as dropped from the report
func (r *Reporter) Skip(path string, err error) {
	r.skipped++
	logger.WithField("file", path).Debugf("Skipped: %v", err)
	r.updateProgress()
}

// Finish completes the progress reporting
func (r *Reporter) Finish() Summary {
	s := Summary{
		Total:     r.total,
		Processed: r.processed,
		Skipped:   r.skipped,
		Duration:  r.now().Sub(r.startTime),
	}

	logger.Info("Scan complete: %d/%d photos processed, %d skipped in %s",
		s.Processed, s.Total, s.Skipped, s.Duration.Round(time.Millisecond))
	return s
}

// updateProgress logs progress at most once per update interval
func (r *Reporter) updateProgress() {
	now := r.now()
	if now.Sub(r.lastUpdateTime) < r.updateInterval {
		return
	}
	r.lastUpdateTime = now

	done := r.processed + r.skipped
	if r.total == 0 {
		return
	}
	percentage := float64(done) / float64(r.total) * 100

	logger.Info("Progress: %.1f%% (%d/%d, %d processed, %d skipped)",
		percentage, done, r.total, r.processed, r.skipped)
}
