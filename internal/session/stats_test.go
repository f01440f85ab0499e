package session

import (
	"testing"
	"time"
)

func TestRefoldStats_EmptySnapshot(t *testing.T) {
	stats := NewRefoldStats(time.Hour)
	snap := stats.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestRefoldStats_Aggregates(t *testing.T) {
	stats := NewRefoldStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		stats.Record(ms)
	}

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Errorf("expected count 5, got %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 50 {
		t.Errorf("expected min 10 max 50, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 30 {
		t.Errorf("expected avg 30, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 30 {
		t.Errorf("expected p50 30, got %f", snap.P50Ms)
	}
}

func TestRefoldStats_NegativeDurationClamped(t *testing.T) {
	stats := NewRefoldStats(time.Hour)
	stats.Record(-5)

	snap := stats.Snapshot()
	if snap.Count != 1 || snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %+v", snap)
	}
}

func TestRefoldStats_WindowPrunes(t *testing.T) {
	stats := NewRefoldStats(50 * time.Millisecond)
	stats.Record(100)
	time.Sleep(80 * time.Millisecond)
	stats.Record(200)

	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected old sample pruned, got count %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected only the recent sample, got %+v", snap)
	}
}

func TestPercentile_Interpolation(t *testing.T) {
	values := []int64{100, 200, 300, 400}

	if got := percentile(values, 0); got != 100 {
		t.Errorf("expected p0=100, got %f", got)
	}
	if got := percentile(values, 100); got != 400 {
		t.Errorf("expected p100=400, got %f", got)
	}
	if got := percentile(values, 50); got != 250 {
		t.Errorf("expected p50=250, got %f", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("expected 0 for empty input, got %f", got)
	}
}
