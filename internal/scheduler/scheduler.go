package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soracht/FocusPulse/internal/preset"
	"github.com/soracht/FocusPulse/internal/session"
	"github.com/soracht/FocusPulse/internal/stress"
)

const (
	tickInterval = time.Second
	settleDelay  = 500 * time.Millisecond

	// Stopped sessions shorter than this are discarded instead of
	// recorded.
	minRecordable = time.Minute
)

// State is the scheduler's lifecycle state. Completed is a transient
// "just finished" signal; it always settles back to Idle before the
// next phase can run.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Offer proposes lengthening the current break. Advisory only: declining
// never touches the countdown.
type Offer struct {
	Extension time.Duration
}

// Events are plain callbacks fired from inside the engine. They run
// with the scheduler lock held and must not call back into it.
type Events struct {
	// PhaseCompleted fires when a phase finishes naturally or via skip,
	// with the finalized record for that phase.
	PhaseCompleted func(finished session.Phase, rec session.Record)
	// OfferChanged fires when a break-extension offer is published or
	// cleared (nil).
	OfferChanged func(offer *Offer)
}

// activeSession is the in-progress session the scheduler exclusively
// owns until it is finalized or discarded.
type activeSession struct {
	id      string
	start   time.Time
	planned time.Duration
}

// Scheduler is the phase state machine. The internal clock and every
// intent funnel through one mutex, so a transition can never interleave
// with a tick.
type Scheduler struct {
	mu sync.Mutex

	preset preset.Preset
	phase  session.Phase
	state  State

	remaining time.Duration
	total     time.Duration

	completedFocus int
	sessionNumber  int
	todayFocus     time.Duration

	stressLevel stress.Level
	offer       *Offer

	cur      *activeSession
	recorder *session.Recorder
	events   Events

	// clockGen invalidates ticks and settle timers from a previous
	// clock epoch; it bumps on every clock start and stop.
	clockGen  int
	clockStop chan struct{}
	settle    *time.Timer

	now func() time.Time
}

func New(p preset.Preset, recorder *session.Recorder, events Events) *Scheduler {
	return &Scheduler{
		preset:        p,
		phase:         session.Focus,
		state:         Idle,
		remaining:     p.Focus,
		total:         p.Focus,
		sessionNumber: 1,
		stressLevel:   stress.Normal,
		recorder:      recorder,
		events:        events,
		now:           time.Now,
	}
}

// RestoreTodayFocus seeds the live focus-time counter from persisted
// records, typically once at startup.
func (s *Scheduler) RestoreTodayFocus(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Idle {
		s.todayFocus = d
	}
}

// Start begins the countdown. From Idle it opens a new session; from
// Paused it resumes the existing one. A no-op in any other state.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Idle:
		s.cur = &activeSession{
			id:      uuid.NewString(),
			start:   s.now(),
			planned: s.total,
		}
		s.startClockLocked()
		s.state = Running
	case Paused:
		s.startClockLocked()
		s.state = Running
	}
}

// Resume is Start from Paused.
func (s *Scheduler) Resume() {
	s.Start()
}

// Pause stops the clock without finalizing the session.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return
	}
	s.stopClockLocked()
	s.state = Paused
}

// Stop cancels the cycle entirely: the in-flight countdown is discarded,
// phase resets to Focus and state to Idle. The current session is only
// recorded when it ran long enough to mean anything.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopClockLocked()
	s.cancelSettleLocked()

	if s.cur != nil {
		now := s.now()
		elapsed := now.Sub(s.cur.start)
		if elapsed >= minRecordable {
			s.emitRecordLocked(now, elapsed, false)
		}
		s.cur = nil
	}

	s.clearOfferLocked()
	s.phase = session.Focus
	s.state = Idle
	s.total = s.preset.Focus
	s.remaining = s.preset.Focus
}

// Skip forces immediate completion of the current phase as if the
// countdown had reached zero.
func (s *Scheduler) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running && s.state != Paused {
		return
	}
	if s.cur == nil {
		return
	}
	s.completePhaseLocked()
}

// SelectPreset swaps the active preset and resets the Focus countdown.
// Only honored while Idle.
func (s *Scheduler) SelectPreset(p preset.Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Idle {
		return
	}
	if err := p.Validate(); err != nil {
		return
	}
	s.preset = p
	s.phase = session.Focus
	s.total = p.Focus
	s.remaining = p.Focus
}

// ObserveStress records the latest fused level and recomputes the
// break-extension offer from scratch.
func (s *Scheduler) ObserveStress(level stress.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stressLevel = level
	s.refreshOfferLocked()
}

// AcceptExtension adds the offered time to both the remaining and total
// countdown and clears the offer.
func (s *Scheduler) AcceptExtension() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offer == nil {
		return
	}
	if s.state != Running || !s.phase.IsBreak() {
		s.clearOfferLocked()
		return
	}
	s.remaining += s.offer.Extension
	s.total += s.offer.Extension
	s.clearOfferLocked()
}

// DeclineExtension clears the offer without touching the countdown.
func (s *Scheduler) DeclineExtension() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearOfferLocked()
}

// Close tears down the clock and any pending settle timer.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopClockLocked()
	s.cancelSettleLocked()
}

// tick advances the countdown by one second. Ticks from a stale clock
// epoch, or observed against a non-running state, are no-ops.
func (s *Scheduler) tick(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.clockGen || s.state != Running {
		return
	}

	s.remaining -= time.Second
	if s.remaining > 0 {
		if s.phase == session.Focus {
			s.todayFocus += time.Second
		}
		return
	}
	s.remaining = 0
	s.completePhaseLocked()
}

// completePhaseLocked runs the phase-completion algorithm: finalize the
// session, advance to the next phase, and settle to Idle shortly after.
func (s *Scheduler) completePhaseLocked() {
	s.stopClockLocked()
	now := s.now()
	finished := s.phase

	var rec session.Record
	if s.cur != nil {
		rec = s.emitRecordLocked(now, now.Sub(s.cur.start), true)
		s.cur = nil
	}

	switch s.phase {
	case session.Focus:
		s.completedFocus++
		if s.completedFocus%s.preset.SessionsUntilLongBreak == 0 {
			s.phase = session.LongBreak
		} else {
			s.phase = session.ShortBreak
		}
	default:
		s.sessionNumber++
		s.phase = session.Focus
	}

	s.total = s.phaseDuration(s.phase)
	s.remaining = s.total
	s.clearOfferLocked()
	s.state = Completed
	s.scheduleSettleLocked()

	if s.events.PhaseCompleted != nil {
		s.events.PhaseCompleted(finished, rec)
	}
}

func (s *Scheduler) emitRecordLocked(end time.Time, elapsed time.Duration, completed bool) session.Record {
	rec := session.Record{
		ID:        s.cur.id,
		StartTime: s.cur.start,
		EndTime:   end,
		Phase:     s.phase,
		Planned:   s.cur.planned,
		Actual:    elapsed,
		Completed: completed,
		Stress:    s.stressLevel,
	}
	if s.recorder != nil {
		s.recorder.Record(rec)
	}
	return rec
}

// refreshOfferLocked recomputes the extension offer. Outside a running
// break there is never an offer; inside one, the suggestion is derived
// fresh from the current level with no memory of declined offers.
func (s *Scheduler) refreshOfferLocked() {
	if s.state != Running || !s.phase.IsBreak() {
		s.clearOfferLocked()
		return
	}

	base := s.phaseDuration(s.phase)
	extension := time.Duration(float64(base) * (s.stressLevel.BreakMultiplier() - 1))
	if extension <= 0 {
		s.clearOfferLocked()
		return
	}

	s.offer = &Offer{Extension: extension}
	if s.events.OfferChanged != nil {
		s.events.OfferChanged(s.offer)
	}
}

func (s *Scheduler) clearOfferLocked() {
	if s.offer == nil {
		return
	}
	s.offer = nil
	if s.events.OfferChanged != nil {
		s.events.OfferChanged(nil)
	}
}

func (s *Scheduler) phaseDuration(p session.Phase) time.Duration {
	switch p {
	case session.ShortBreak:
		return s.preset.ShortBreak
	case session.LongBreak:
		return s.preset.LongBreak
	default:
		return s.preset.Focus
	}
}
