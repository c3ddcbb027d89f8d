package session

import (
	"fmt"
	"time"

	"github.com/soracht/FocusPulse/internal/stress"
)

// Phase is one segment of the work/rest cycle.
type Phase int

const (
	Focus Phase = iota
	ShortBreak
	LongBreak
)

func (p Phase) String() string {
	switch p {
	case Focus:
		return "focus"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	}
	return "unknown"
}

func (p Phase) IsBreak() bool {
	return p == ShortBreak || p == LongBreak
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "focus":
		*p = Focus
	case "short_break":
		*p = ShortBreak
	case "long_break":
		*p = LongBreak
	default:
		return fmt.Errorf("unknown phase %q", string(text))
	}
	return nil
}

// Record is a finalized session. Records are immutable once emitted by
// the scheduler; the recorder and persistence only ever append them.
type Record struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"start"`
	EndTime   time.Time     `json:"end"`
	Phase     Phase         `json:"phase"`
	Planned   time.Duration `json:"planned"`
	Actual    time.Duration `json:"actual"`
	Completed bool          `json:"completed"`
	Stress    stress.Level  `json:"stress_level"`
}

// StartedOn reports whether the record's session began on the same
// calendar day as t.
func (r Record) StartedOn(t time.Time) bool {
	y1, m1, d1 := r.StartTime.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
