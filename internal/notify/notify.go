package notify

import (
	"fmt"
	"math/rand"

	"github.com/godbus/dbus/v5"

	"github.com/soracht/FocusPulse/internal/session"
)

// Notifier sends desktop notifications over the session bus via
// org.freedesktop.Notifications.
type Notifier struct {
	conn *dbus.Conn
}

func New() (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Notifier{conn: conn}, nil
}

func (n *Notifier) Close() error {
	return n.conn.Close()
}

// Send delivers a single notification.
func (n *Notifier) Send(summary, body string) error {
	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"FocusPulse",     // app_name
		uint32(0),        // replaces_id
		"alarm-symbolic", // app_icon
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{ // hints
			"urgency": dbus.MakeVariant(byte(1)),
		},
		int32(10000), // expire_timeout (10 seconds)
	)

	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}

// PhaseCompleted announces which phase just ended.
func (n *Notifier) PhaseCompleted(finished session.Phase) error {
	switch finished {
	case session.Focus:
		return n.Send("Focus complete", encouragements[rand.Intn(len(encouragements))])
	case session.LongBreak:
		return n.Send("Long break over", "Back to it. A fresh cycle starts now.")
	default:
		return n.Send("Break over", "Time to focus again.")
	}
}

var encouragements = []string{
	"Nice work. Take a breather.",
	"Session done. Stand up and stretch.",
	"Another one in the books.",
	"Good focus. Break time.",
}
