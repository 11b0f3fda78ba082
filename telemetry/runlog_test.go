package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
)

// ---------- Disabled log ----------

func TestRunLog_EmptyPathDisables(t *testing.T) {
	l, err := NewRunLog("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if l != nil {
		t.Fatal("empty path should return a nil log")
	}

	// A nil log swallows everything
	if err := l.Write(RunRecord{Score: 10}); err != nil {
		t.Errorf("nil log write should be a no-op: %v", err)
	}
	if l.Count() != 0 {
		t.Errorf("nil log should count 0 runs, got %d", l.Count())
	}
	if err := l.Close(); err != nil {
		t.Errorf("nil log close should be a no-op: %v", err)
	}
}

// ---------- Writing ----------

func TestRunLog_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	l, err := NewRunLog(path)
	if err != nil {
		t.Fatal(err)
	}

	recs := []RunRecord{
		{Timestamp: "2026-01-02T15:04:05Z", Difficulty: "easy", Score: 350, Laps: 2, PeakLength: 9, Duration: 41.5, DeathCause: "energy"},
		{Timestamp: "2026-01-02T15:06:10Z", Difficulty: "hardcore", Score: 120, Laps: 0, PeakLength: 6, Duration: 12.25, DeathCause: "collision"},
	}
	for _, r := range recs {
		if err := l.Write(r); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	if l.Count() != 2 {
		t.Errorf("expected 2 logged runs, got %d", l.Count())
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "timestamp"); got != 1 {
		t.Errorf("header should appear exactly once, found %d", got)
	}

	var back []RunRecord
	if err := gocsv.UnmarshalBytes(data, &back); err != nil {
		t.Fatalf("reading log back: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("expected 2 records, got %d", len(back))
	}
	if back[0] != recs[0] || back[1] != recs[1] {
		t.Errorf("records changed on round trip:\n%+v\n%+v", back, recs)
	}
}

func TestRunLog_TimestampDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	l, err := NewRunLog(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := l.Write(RunRecord{Difficulty: "easy", Score: 75, DeathCause: "collision"}); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back []RunRecord
	if err := gocsv.UnmarshalBytes(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0].Timestamp == "" {
		t.Error("a missing timestamp should be filled at write time")
	}
}
