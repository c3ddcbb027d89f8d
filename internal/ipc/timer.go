package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/soracht/FocusPulse/internal/biometric"
	"github.com/soracht/FocusPulse/internal/breathing"
	"github.com/soracht/FocusPulse/internal/notify"
	"github.com/soracht/FocusPulse/internal/preset"
	"github.com/soracht/FocusPulse/internal/scheduler"
	"github.com/soracht/FocusPulse/internal/stress"
)

// Timer is the D-Bus object the daemon exports. Each method forwards
// one user intent or monitor sample into the engine.
type Timer struct {
	Scheduler *scheduler.Scheduler
	Estimator *stress.Estimator
	Presets   map[string]preset.Preset
	Breathing map[string]breathing.Pattern
	Notifier  *notify.Notifier
}

func (t *Timer) Start() *dbus.Error {
	t.Scheduler.Start()
	return nil
}

func (t *Timer) Pause() *dbus.Error {
	t.Scheduler.Pause()
	return nil
}

func (t *Timer) Resume() *dbus.Error {
	t.Scheduler.Resume()
	return nil
}

func (t *Timer) Stop() *dbus.Error {
	t.Scheduler.Stop()
	return nil
}

func (t *Timer) Skip() *dbus.Error {
	t.Scheduler.Skip()
	return nil
}

func (t *Timer) SelectPreset(name string) *dbus.Error {
	p, exists := t.Presets[name]
	if !exists {
		return dbus.MakeFailedError(fmt.Errorf("unknown preset %q", name))
	}
	t.Scheduler.SelectPreset(p)
	return nil
}

func (t *Timer) AcceptExtension() *dbus.Error {
	t.Scheduler.AcceptExtension()
	return nil
}

func (t *Timer) DeclineExtension() *dbus.Error {
	t.Scheduler.DeclineExtension()
	return nil
}

// PushHeartRate ingests one heart-rate reading (bpm) from the monitor
// bridge. Malformed samples are dropped by the estimator; either way
// the scheduler observes the latest fused level.
func (t *Timer) PushHeartRate(unixMilli int64, bpm float64) *dbus.Error {
	level := t.Estimator.AddHeartRate(biometric.Sample{
		Timestamp: time.UnixMilli(unixMilli),
		Value:     bpm,
	})
	t.Scheduler.ObserveStress(level)
	return nil
}

// PushHRV ingests one heart-rate-variability reading (ms).
func (t *Timer) PushHRV(unixMilli int64, hrv float64) *dbus.Error {
	level := t.Estimator.AddHRV(biometric.Sample{
		Timestamp: time.UnixMilli(unixMilli),
		Value:     hrv,
	})
	t.Scheduler.ObserveStress(level)
	return nil
}

func (t *Timer) Status() (string, *dbus.Error) {
	snap := t.Scheduler.Snapshot()
	status := fmt.Sprintf("%s %s  %s / %s  session %d  focus today %s  stress %s",
		snap.Phase, snap.State,
		formatCountdown(snap.Remaining), formatCountdown(snap.Total),
		snap.SessionNumber, snap.TodayFocusTime.Round(time.Second), snap.Stress)
	if snap.Offer != nil {
		status += fmt.Sprintf("  [break extension offered: +%s]", snap.Offer.Extension.Round(time.Second))
	}
	return status, nil
}

func (t *Timer) StatusJSON() (string, *dbus.Error) {
	data, err := json.Marshal(t.Scheduler.Snapshot())
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return string(data), nil
}

// Breathe starts a breathing exercise in the background and notifies on
// completion. The call returns immediately.
func (t *Timer) Breathe(name string) *dbus.Error {
	pattern, exists := t.Breathing[name]
	if !exists {
		return dbus.MakeFailedError(fmt.Errorf("unknown breathing pattern %q", name))
	}

	cadence := breathing.New(pattern, nil, nil)
	go func() {
		if err := cadence.Run(context.Background()); err != nil {
			log.Printf("Breathing exercise %s aborted: %v", name, err)
			return
		}
		log.Printf("Breathing exercise %s complete", name)
		if t.Notifier != nil {
			if err := t.Notifier.Send("Breathing complete", fmt.Sprintf("Finished %d cycles of %s.", pattern.Cycles, name)); err != nil {
				log.Printf("Failed to send breathing notification: %v", err)
			}
		}
	}()
	return nil
}

func formatCountdown(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
