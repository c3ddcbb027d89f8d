package session

import (
	"errors"
	"testing"
	"time"

	"github.com/soracht/FocusPulse/internal/stress"
)

type memorySink struct {
	records []Record
	err     error
}

func (m *memorySink) Append(rec Record) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func focusRecord(start time.Time, actual time.Duration, completed bool) Record {
	return Record{
		ID:        "rec",
		StartTime: start,
		EndTime:   start.Add(actual),
		Phase:     Focus,
		Planned:   25 * time.Minute,
		Actual:    actual,
		Completed: completed,
		Stress:    stress.Normal,
	}
}

func TestRecorderForwardsToSink(t *testing.T) {
	sink := &memorySink{}
	r := NewRecorder(sink, nil)

	rec := focusRecord(time.Now(), 25*time.Minute, true)
	r.Record(rec)

	if len(sink.records) != 1 {
		t.Fatalf("sink received %d records, want 1", len(sink.records))
	}
	if len(r.Records()) != 1 {
		t.Fatalf("recorder holds %d records, want 1", len(r.Records()))
	}
}

func TestRecorderSurvivesSinkFailure(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	r := NewRecorder(sink, nil)

	r.Record(focusRecord(time.Now(), 25*time.Minute, true))

	if len(r.Records()) != 1 {
		t.Errorf("in-memory log should keep the record despite sink failure")
	}
}

func TestTodayAggregates(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.Local)
	today := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	yesterday := today.Add(-24 * time.Hour)

	initial := []Record{
		focusRecord(today, 25*time.Minute, true),
		focusRecord(today.Add(time.Hour), 20*time.Minute, true),
		// stopped early, not completed: excluded
		focusRecord(today.Add(2*time.Hour), 5*time.Minute, false),
		// yesterday: excluded
		focusRecord(yesterday, 25*time.Minute, true),
		// breaks never count toward focus time
		{StartTime: today.Add(3 * time.Hour), Phase: ShortBreak, Actual: 5 * time.Minute, Completed: true},
	}

	r := NewRecorder(nil, initial)

	if got := r.TodayFocusTime(now); got != 45*time.Minute {
		t.Errorf("TodayFocusTime = %v, want 45m", got)
	}
	if got := r.TodayCompletedFocusSessions(now); got != 2 {
		t.Errorf("TodayCompletedFocusSessions = %d, want 2", got)
	}
}

func TestStartedOn(t *testing.T) {
	rec := Record{StartTime: time.Date(2026, 8, 24, 23, 59, 0, 0, time.Local)}
	if !rec.StartedOn(time.Date(2026, 8, 24, 0, 1, 0, 0, time.Local)) {
		t.Errorf("records from the same calendar day should match")
	}
	if rec.StartedOn(time.Date(2026, 8, 25, 0, 1, 0, 0, time.Local)) {
		t.Errorf("records from the previous day should not match")
	}
}

func TestPhaseRoundTrip(t *testing.T) {
	for _, p := range []Phase{Focus, ShortBreak, LongBreak} {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", p, err)
		}
		var back Phase
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) failed: %v", text, err)
		}
		if back != p {
			t.Errorf("round trip %v -> %s -> %v", p, text, back)
		}
	}

	var p Phase
	if err := p.UnmarshalText([]byte("nap")); err == nil {
		t.Errorf("expected error for unknown phase")
	}
}
