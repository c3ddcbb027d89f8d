package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{"Minutes", "25m", 25 * time.Minute, false},
		{"Compound", "1h30m", 90 * time.Minute, false},
		{"Seconds", "45s", 45 * time.Second, false},
		{"Zero allowed", "0s", 0, false},
		{"Negative rejected", "-5m", 0, true},
		{"Garbage", "soon", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d.Std())
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	cfg := Config{}
	cfg.SetDefault()

	assert.Equal(t, float64(60), cfg.Settings.RestingHeartRate)
	assert.Equal(t, "classic", cfg.Settings.ActivePreset)
	assert.NotEmpty(t, cfg.Settings.StatePath)
	assert.True(t, *cfg.Settings.Notifications)

	classic := cfg.Presets["classic"]
	assert.Equal(t, 25*time.Minute, classic.Focus.Std())
	assert.Equal(t, 5*time.Minute, classic.ShortBreak.Std())
	assert.Equal(t, 15*time.Minute, classic.LongBreak.Std())
	assert.Equal(t, 4, classic.SessionsUntilLongBreak)

	box := cfg.Breathing["box"]
	assert.Equal(t, 4*time.Second, box.Inhale.Std())
	assert.Equal(t, 4, box.Cycles)
}

func TestSetDefaultFillsSessionCount(t *testing.T) {
	cfg := Config{
		Presets: map[string]PresetConfig{
			"deep": {
				Focus:      Duration(50 * time.Minute),
				ShortBreak: Duration(10 * time.Minute),
				LongBreak:  Duration(30 * time.Minute),
			},
		},
	}
	cfg.SetDefault()

	assert.Equal(t, 4, cfg.Presets["deep"].SessionsUntilLongBreak)
}

func TestLoadFromBytes(t *testing.T) {
	tomlData := `
[settings]
resting_heart_rate = 55
active_preset = "deep"

[presets.deep]
focus = "50m"
short_break = "10m"
long_break = "30m"
sessions_until_long_break = 2

[breathing.calm]
inhale = "4s"
exhale = "8s"
cycles = 6
`

	cfg, err := LoadFromBytes([]byte(tomlData))
	assert.NoError(t, err)

	assert.Equal(t, float64(55), cfg.Settings.RestingHeartRate)
	assert.Equal(t, "deep", cfg.Settings.ActivePreset)
	assert.Equal(t, 50*time.Minute, cfg.Presets["deep"].Focus.Std())
	assert.Equal(t, 2, cfg.Presets["deep"].SessionsUntilLongBreak)

	// defaults still fill in around the file
	assert.Equal(t, 25*time.Minute, cfg.Presets["classic"].Focus.Std())
	assert.True(t, *cfg.Settings.Notifications)

	calm := cfg.Breathing["calm"]
	assert.Equal(t, 4*time.Second, calm.Inhale.Std())
	assert.Equal(t, time.Duration(0), calm.HoldIn.Std())
	assert.Equal(t, 6, calm.Cycles)
}

func TestLoadFromBytesMalformed(t *testing.T) {
	_, err := LoadFromBytes([]byte("[settings\nnope"))
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile("/nonexistent/focuspulse/config.toml")
	assert.NoError(t, err)
	assert.Equal(t, "classic", cfg.Settings.ActivePreset)
}

func TestLoadFromFile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "config-*.toml")
	assert.NoError(t, err)
	defer os.Remove(tempFile.Name())

	tomlData := `
[settings]
resting_heart_rate = 58

[presets.classic]
focus = "20m"
short_break = "4m"
long_break = "12m"
sessions_until_long_break = 3
`
	_, err = tempFile.Write([]byte(tomlData))
	assert.NoError(t, err)
	tempFile.Close()

	cfg, err := LoadFromFile(tempFile.Name())
	assert.NoError(t, err)

	assert.Equal(t, float64(58), cfg.Settings.RestingHeartRate)
	assert.Equal(t, 20*time.Minute, cfg.Presets["classic"].Focus.Std())
	assert.Equal(t, 3, cfg.Presets["classic"].SessionsUntilLongBreak)
}
