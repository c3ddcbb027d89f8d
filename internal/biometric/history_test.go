package biometric

import (
	"testing"
	"time"
)

func sampleAt(base time.Time, offset time.Duration, value float64) Sample {
	return Sample{Timestamp: base.Add(offset), Value: value}
}

func TestHistoryBounded(t *testing.T) {
	base := time.Now()
	h := NewHistory(100)

	for i := 0; i < 150; i++ {
		h.Add(sampleAt(base, time.Duration(i)*time.Second, float64(i)))
	}

	if h.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", h.Len())
	}

	values := h.Values()
	if values[0] != 50 {
		t.Errorf("oldest retained value = %v, want 50", values[0])
	}
	if values[99] != 149 {
		t.Errorf("newest value = %v, want 149", values[99])
	}
}

func TestHistoryLatest(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Latest(); ok {
		t.Errorf("Latest() on empty history should report not ok")
	}

	base := time.Now()
	h.Add(sampleAt(base, 0, 60))
	h.Add(sampleAt(base, time.Second, 65))

	latest, ok := h.Latest()
	if !ok || latest.Value != 65 {
		t.Errorf("Latest() = %v, %v; want 65, true", latest.Value, ok)
	}
}

func TestHistoryBetween(t *testing.T) {
	base := time.Now()
	h := NewHistory(10)
	for i := 0; i < 10; i++ {
		h.Add(sampleAt(base, time.Duration(i)*time.Minute, float64(60+i)))
	}

	window := h.Between(base.Add(2*time.Minute), base.Add(5*time.Minute))
	if len(window) != 4 {
		t.Fatalf("Between returned %d samples, want 4", len(window))
	}
	if window[0].Value != 62 || window[3].Value != 65 {
		t.Errorf("window bounds = %v..%v, want 62..65", window[0].Value, window[3].Value)
	}

	empty := h.Between(base.Add(time.Hour), base.Add(2*time.Hour))
	if len(empty) != 0 {
		t.Errorf("expected empty window, got %d samples", len(empty))
	}
}
