package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunRecord is one finished run in the CSV log.
type RunRecord struct {
	Timestamp  string  `csv:"timestamp"`
	Difficulty string  `csv:"difficulty"`
	Score      int32   `csv:"score"`
	Laps       int     `csv:"laps"`
	PeakLength int     `csv:"peak_length"`
	Duration   float64 `csv:"duration_sec"`
	DeathCause string  `csv:"death_cause"`
}

// RunLog appends finished runs to a CSV file. A nil log discards
// everything, so callers never need to guard.
type RunLog struct {
	file          *os.File
	headerWritten bool
	scores        []float64
}

// NewRunLog opens (or creates) the log file. Returns nil when path is
// empty, which disables logging.
func NewRunLog(path string) (*RunLog, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating run log: %w", err)
	}
	return &RunLog{file: f}, nil
}

// Write appends one run record. The first write carries the header.
func (l *RunLog) Write(rec RunRecord) error {
	if l == nil {
		return nil
	}
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().Format(time.RFC3339)
	}

	records := []RunRecord{rec}
	if !l.headerWritten {
		if err := gocsv.Marshal(records, l.file); err != nil {
			return fmt.Errorf("writing run log: %w", err)
		}
		l.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, l.file); err != nil {
			return fmt.Errorf("writing run log: %w", err)
		}
	}

	l.scores = append(l.scores, float64(rec.Score))
	return nil
}

// Count returns the number of runs logged so far.
func (l *RunLog) Count() int {
	if l == nil {
		return 0
	}
	return len(l.scores)
}

// Close logs a session summary and closes the file.
func (l *RunLog) Close() error {
	if l == nil {
		return nil
	}

	if len(l.scores) > 0 {
		attrs := []any{
			"runs", len(l.scores),
			"mean_score", stat.Mean(l.scores, nil),
			"best_score", floats.Max(l.scores),
		}
		if len(l.scores) > 1 {
			attrs = append(attrs, "stddev_score", stat.StdDev(l.scores, nil))
		}
		slog.Info("session summary", attrs...)
	}
	return l.file.Close()
}
