package session

import (
	"log"
	"sync"
	"time"
)

// Sink receives every finalized record for persistence. The engine does
// not care about the storage medium behind it.
type Sink interface {
	Append(Record) error
}

// Recorder owns the finalized session log and the "today" aggregates
// derived from it.
type Recorder struct {
	mu      sync.Mutex
	records []Record
	sink    Sink
}

// NewRecorder starts from a previously loaded log, typically whatever
// the persistence collaborator filtered to today.
func NewRecorder(sink Sink, initial []Record) *Recorder {
	records := make([]Record, len(initial))
	copy(records, initial)
	return &Recorder{records: records, sink: sink}
}

// Record appends a finalized session. A sink failure loses nothing but
// durability; the in-memory log stays authoritative for aggregates.
func (r *Recorder) Record(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	if r.sink != nil {
		if err := r.sink.Append(rec); err != nil {
			log.Printf("Failed to persist session %s: %v", rec.ID, err)
		}
	}
}

func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// TodayFocusTime sums actual duration over completed focus sessions
// started on the same calendar day as now.
func (r *Recorder) TodayFocusTime(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total time.Duration
	for _, rec := range r.records {
		if rec.Phase == Focus && rec.Completed && rec.StartedOn(now) {
			total += rec.Actual
		}
	}
	return total
}

// TodayCompletedFocusSessions counts completed focus sessions started
// on the same calendar day as now.
func (r *Recorder) TodayCompletedFocusSessions(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, rec := range r.records {
		if rec.Phase == Focus && rec.Completed && rec.StartedOn(now) {
			count++
		}
	}
	return count
}
