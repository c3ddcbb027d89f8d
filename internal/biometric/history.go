package biometric

import "time"

// Default buffer capacities for the two monitor feeds.
const (
	HeartRateCapacity = 100
	HRVCapacity       = 50
)

// Sample is a single reading pushed by the monitor.
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// History keeps the most recent N samples of one signal, oldest evicted
// first. Not safe for concurrent use; the estimator serializes access.
type History struct {
	capacity int
	samples  []Sample
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		capacity: capacity,
		samples:  make([]Sample, 0, capacity),
	}
}

func (h *History) Add(s Sample) {
	if len(h.samples) == h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples[len(h.samples)-1] = s
		return
	}
	h.samples = append(h.samples, s)
}

func (h *History) Len() int {
	return len(h.samples)
}

func (h *History) Latest() (Sample, bool) {
	if len(h.samples) == 0 {
		return Sample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Values returns the buffered values in arrival order.
func (h *History) Values() []float64 {
	values := make([]float64, len(h.samples))
	for i, s := range h.samples {
		values[i] = s.Value
	}
	return values
}

// Between returns the samples with timestamps inside [start, end].
func (h *History) Between(start, end time.Time) []Sample {
	var out []Sample
	for _, s := range h.samples {
		if s.Timestamp.Before(start) || s.Timestamp.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}
