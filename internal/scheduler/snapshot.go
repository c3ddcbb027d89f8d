package scheduler

import (
	"time"

	"github.com/soracht/FocusPulse/internal/session"
	"github.com/soracht/FocusPulse/internal/stress"
)

// Snapshot is the published read-only state surface.
type Snapshot struct {
	Phase                  session.Phase `json:"phase"`
	State                  State         `json:"state"`
	Remaining              time.Duration `json:"remaining"`
	Total                  time.Duration `json:"total"`
	CompletedFocusSessions int           `json:"completed_focus_sessions"`
	SessionNumber          int           `json:"session_number"`
	TodayFocusTime         time.Duration `json:"today_focus_time"`
	Stress                 stress.Level  `json:"stress_level"`
	Offer                  *Offer        `json:"offer,omitempty"`
	Preset                 string        `json:"preset"`
}

func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:                  s.phase,
		State:                  s.state,
		Remaining:              s.remaining,
		Total:                  s.total,
		CompletedFocusSessions: s.completedFocus,
		SessionNumber:          s.sessionNumber,
		TodayFocusTime:         s.todayFocus,
		Stress:                 s.stressLevel,
		Preset:                 s.preset.Name,
	}
	if s.offer != nil {
		offer := *s.offer
		snap.Offer = &offer
	}
	return snap
}

// Progress is 1 - remaining/total, in [0,1].
func (snap Snapshot) Progress() float64 {
	if snap.Total <= 0 {
		return 0
	}
	return 1 - float64(snap.Remaining)/float64(snap.Total)
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
