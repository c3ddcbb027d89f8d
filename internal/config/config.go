package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration is a TOML-friendly wrapper around time.Duration, written as
// strings like "25m" or "1h30m". Negative values are rejected; zero is
// allowed so optional fields (breathing holds) can mean "skip".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	if parsed < 0 {
		return fmt.Errorf("duration %q must not be negative", string(text))
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type PresetConfig struct {
	Focus                  Duration `toml:"focus"`
	ShortBreak             Duration `toml:"short_break"`
	LongBreak              Duration `toml:"long_break"`
	SessionsUntilLongBreak int      `toml:"sessions_until_long_break"`
}

type BreathingConfig struct {
	Inhale  Duration `toml:"inhale"`
	HoldIn  Duration `toml:"hold_in"`
	Exhale  Duration `toml:"exhale"`
	HoldOut Duration `toml:"hold_out"`
	Cycles  int      `toml:"cycles"`
}

type Settings struct {
	RestingHeartRate float64 `toml:"resting_heart_rate"`
	StatePath        string  `toml:"state_path"`
	Notifications    *bool   `toml:"notifications"`
	ActivePreset     string  `toml:"active_preset"`
}

type Config struct {
	Settings  Settings                   `toml:"settings"`
	Presets   map[string]PresetConfig    `toml:"presets"`
	Breathing map[string]BreathingConfig `toml:"breathing"`
}

// SetDefault fills in anything the config file left unset. The classic
// 25/5/15x4 preset and box breathing are always available.
func (c *Config) SetDefault() {
	if c.Settings.RestingHeartRate == 0 {
		c.Settings.RestingHeartRate = 60
	}
	if c.Settings.StatePath == "" {
		c.Settings.StatePath = defaultStatePath()
	}
	if c.Settings.Notifications == nil {
		defaultVal := true
		c.Settings.Notifications = &defaultVal
	}
	if c.Settings.ActivePreset == "" {
		c.Settings.ActivePreset = "classic"
	}

	if c.Presets == nil {
		c.Presets = make(map[string]PresetConfig)
	}
	if _, exists := c.Presets["classic"]; !exists {
		c.Presets["classic"] = PresetConfig{
			Focus:                  Duration(25 * time.Minute),
			ShortBreak:             Duration(5 * time.Minute),
			LongBreak:              Duration(15 * time.Minute),
			SessionsUntilLongBreak: 4,
		}
	}
	for name, pc := range c.Presets {
		if pc.SessionsUntilLongBreak == 0 {
			pc.SessionsUntilLongBreak = 4
			c.Presets[name] = pc
		}
	}

	if c.Breathing == nil {
		c.Breathing = make(map[string]BreathingConfig)
	}
	if _, exists := c.Breathing["box"]; !exists {
		c.Breathing["box"] = BreathingConfig{
			Inhale:  Duration(4 * time.Second),
			HoldIn:  Duration(4 * time.Second),
			Exhale:  Duration(4 * time.Second),
			HoldOut: Duration(4 * time.Second),
			Cycles:  4,
		}
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".local", "state", "focuspulse", "state.json")
}

// LoadFromFile reads the config at path. A missing file is not an error:
// the built-in defaults apply.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := &Config{}
			cfg.SetDefault()
			return cfg, nil
		}
		return nil, err
	}
	return LoadFromBytes(data)
}

func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.SetDefault()
	return &cfg, nil
}
