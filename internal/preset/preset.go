package preset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soracht/FocusPulse/internal/config"
)

// Preset is a named duration configuration for the scheduler. It is
// passed and stored by value so an active scheduler can never observe
// it changing underneath it.
type Preset struct {
	ID                     string
	Name                   string
	Focus                  time.Duration
	ShortBreak             time.Duration
	LongBreak              time.Duration
	SessionsUntilLongBreak int
}

func New(name string, focus, shortBreak, longBreak time.Duration, sessionsUntilLongBreak int) Preset {
	return Preset{
		ID:                     uuid.NewString(),
		Name:                   name,
		Focus:                  focus,
		ShortBreak:             shortBreak,
		LongBreak:              longBreak,
		SessionsUntilLongBreak: sessionsUntilLongBreak,
	}
}

// FromConfig builds and validates a preset from its config table.
func FromConfig(name string, pc config.PresetConfig) (Preset, error) {
	p := New(name, pc.Focus.Std(), pc.ShortBreak.Std(), pc.LongBreak.Std(), pc.SessionsUntilLongBreak)
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset has no name")
	}
	if p.Focus <= 0 || p.ShortBreak <= 0 || p.LongBreak <= 0 {
		return fmt.Errorf("preset %s: all durations must be positive", p.Name)
	}
	if p.SessionsUntilLongBreak < 1 {
		return fmt.Errorf("preset %s: sessions_until_long_break must be at least 1", p.Name)
	}
	return nil
}
