package breathing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/soracht/FocusPulse/internal/config"
)

// The UI wants smooth phase progress, so the cadence ticks at 50ms
// instead of the scheduler's 1s.
const tickInterval = 50 * time.Millisecond

// Phase is one segment of a guided breathing cycle.
type Phase int

const (
	Inhale Phase = iota
	HoldIn
	Exhale
	HoldOut
	Complete
)

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "inhale"
	case HoldIn:
		return "hold_in"
	case Exhale:
		return "exhale"
	case HoldOut:
		return "hold_out"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Pattern configures one breathing exercise. Zero-length holds are
// skipped entirely.
type Pattern struct {
	Name    string
	Inhale  time.Duration
	HoldIn  time.Duration
	Exhale  time.Duration
	HoldOut time.Duration
	Cycles  int
}

func FromConfig(name string, bc config.BreathingConfig) (Pattern, error) {
	p := Pattern{
		Name:    name,
		Inhale:  bc.Inhale.Std(),
		HoldIn:  bc.HoldIn.Std(),
		Exhale:  bc.Exhale.Std(),
		HoldOut: bc.HoldOut.Std(),
		Cycles:  bc.Cycles,
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

func (p Pattern) Validate() error {
	if p.Inhale <= 0 || p.Exhale <= 0 {
		return fmt.Errorf("pattern %s: inhale and exhale must be positive", p.Name)
	}
	if p.HoldIn < 0 || p.HoldOut < 0 {
		return fmt.Errorf("pattern %s: holds must not be negative", p.Name)
	}
	if p.Cycles < 1 {
		return fmt.Errorf("pattern %s: cycles must be at least 1", p.Name)
	}
	return nil
}

func (p Pattern) durationOf(phase Phase) time.Duration {
	switch phase {
	case Inhale:
		return p.Inhale
	case HoldIn:
		return p.HoldIn
	case Exhale:
		return p.Exhale
	case HoldOut:
		return p.HoldOut
	}
	return 0
}

// Snapshot is the published state of a running cadence.
type Snapshot struct {
	Phase         Phase
	Cycle         int
	PhaseElapsed  time.Duration
	PhaseDuration time.Duration
}

// Cadence drives one breathing exercise through its phases. Like the
// scheduler, all mutation happens behind one mutex, fed by a single
// ticker goroutine.
type Cadence struct {
	mu         sync.Mutex
	pattern    Pattern
	phase      Phase
	cycle      int
	phaseStart time.Time

	onPhase func(Phase, int)
	onDone  func()

	now func() time.Time
}

// New creates a cadence for the pattern. Both callbacks may be nil;
// they run with the cadence lock held and must not call back into it.
func New(p Pattern, onPhase func(phase Phase, cycle int), onDone func()) *Cadence {
	return &Cadence{
		pattern: p,
		phase:   Inhale,
		cycle:   1,
		onPhase: onPhase,
		onDone:  onDone,
		now:     time.Now,
	}
}

// Run drives the exercise to completion or cancellation.
func (c *Cadence) Run(ctx context.Context) error {
	if err := c.pattern.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.phase = Inhale
	c.cycle = 1
	c.phaseStart = c.now()
	c.mu.Unlock()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.advance(c.now()) {
				return nil
			}
		}
	}
}

// advance moves the cadence forward to wherever it should be at the
// given instant, skipping zero-length holds. Returns true once the
// terminal Complete phase is reached.
func (c *Cadence) advance(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == Complete {
		return true
	}

	for {
		d := c.pattern.durationOf(c.phase)
		if d > 0 && now.Sub(c.phaseStart) < d {
			return false
		}

		next, wrapped := nextPhase(c.phase)
		if wrapped {
			if c.cycle >= c.pattern.Cycles {
				c.phase = Complete
				if c.onDone != nil {
					c.onDone()
				}
				return true
			}
			c.cycle++
		}

		c.phase = next
		c.phaseStart = now
		if c.pattern.durationOf(c.phase) > 0 {
			if c.onPhase != nil {
				c.onPhase(c.phase, c.cycle)
			}
			return false
		}
		// zero-length phase: keep going
	}
}

func nextPhase(p Phase) (next Phase, wrapped bool) {
	switch p {
	case Inhale:
		return HoldIn, false
	case HoldIn:
		return Exhale, false
	case Exhale:
		return HoldOut, false
	default:
		return Inhale, true
	}
}

func (c *Cadence) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:         c.phase,
		Cycle:         c.cycle,
		PhaseDuration: c.pattern.durationOf(c.phase),
	}
	if c.phase != Complete && !c.phaseStart.IsZero() {
		snap.PhaseElapsed = c.now().Sub(c.phaseStart)
	}
	return snap
}
