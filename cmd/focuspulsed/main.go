package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/soracht/FocusPulse/internal/breathing"
	"github.com/soracht/FocusPulse/internal/config"
	"github.com/soracht/FocusPulse/internal/ipc"
	"github.com/soracht/FocusPulse/internal/notify"
	"github.com/soracht/FocusPulse/internal/preset"
	"github.com/soracht/FocusPulse/internal/scheduler"
	"github.com/soracht/FocusPulse/internal/session"
	"github.com/soracht/FocusPulse/internal/state"
	"github.com/soracht/FocusPulse/internal/stress"
)

func main() {
	// check for argument to determine config location
	argPath := defaultConfigPath()
	if len(os.Args) > 1 {
		argPath = os.Args[1]
	}
	log.Println("Using config file at:", argPath)

	cfg, err := config.LoadFromFile(argPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	stateMgr, err := state.NewManager(cfg.Settings.StatePath)
	if err != nil {
		log.Fatal("Failed to initialize state manager:", err)
	}

	recorder := session.NewRecorder(stateMgr, stateMgr.Records())
	estimator := stress.NewEstimator(cfg.Settings.RestingHeartRate)

	presets := make(map[string]preset.Preset)
	for name, pc := range cfg.Presets {
		p, err := preset.FromConfig(name, pc)
		if err != nil {
			log.Fatal("Invalid preset:", err)
		}
		presets[name] = p
	}
	active, exists := presets[cfg.Settings.ActivePreset]
	if !exists {
		log.Fatalf("Active preset %q is not defined", cfg.Settings.ActivePreset)
	}

	patterns := make(map[string]breathing.Pattern)
	for name, bc := range cfg.Breathing {
		p, err := breathing.FromConfig(name, bc)
		if err != nil {
			log.Fatal("Invalid breathing pattern:", err)
		}
		patterns[name] = p
	}

	var notifier *notify.Notifier
	if *cfg.Settings.Notifications {
		notifier, err = notify.New()
		if err != nil {
			log.Println("Notifications unavailable:", err)
			notifier = nil
		}
	}

	events := scheduler.Events{
		PhaseCompleted: func(finished session.Phase, rec session.Record) {
			log.Printf("Phase %s completed (session %s, actual %s)", finished, rec.ID, rec.Actual.Round(time.Second))
			if notifier == nil {
				return
			}
			// fired with the scheduler lock held, deliver async
			go func() {
				if err := notifier.PhaseCompleted(finished); err != nil {
					log.Printf("Failed to send notification: %v", err)
				}
			}()
		},
		OfferChanged: func(offer *scheduler.Offer) {
			if offer != nil {
				log.Printf("Break extension offered: +%s", offer.Extension.Round(time.Second))
			}
		},
	}

	sched := scheduler.New(active, recorder, events)
	sched.RestoreTodayFocus(recorder.TodayFocusTime(time.Now()))
	defer sched.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Opening session D-Bus service...")
		timer := &ipc.Timer{
			Scheduler: sched,
			Estimator: estimator,
			Presets:   presets,
			Breathing: patterns,
			Notifier:  notifier,
		}
		if err := serveTimer(ctx, timer); err != nil {
			log.Println("focuspulse service error:", err)
			cancel()
		}
	}()

	wg.Wait()
	fmt.Println("Shutdown complete")
}

func serveTimer(ctx context.Context, timer *ipc.Timer) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(ipc.ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil || reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("failed to request name: %w", err)
	}

	if err := conn.Export(timer, dbus.ObjectPath(ipc.ObjectPath), ipc.InterfaceName); err != nil {
		return fmt.Errorf("failed to export interface: %w", err)
	}

	log.Println("FocusPulse daemon ready")
	<-ctx.Done()
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "focuspulse", "config.toml")
}
