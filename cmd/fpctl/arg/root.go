package arg

import (
	"fmt"
	"log"
	"os"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/soracht/FocusPulse/internal/ipc"
)

var rootCmd = &cobra.Command{
	Use:   "fpctl",
	Short: "fpctl is the command line tool for FocusPulse",
	Long: `fpctl talks to the FocusPulse daemon via D-Bus.
			You can use it to drive the timer, push biometric samples, and query status.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// timerObject connects to the session bus and returns the daemon's
// timer object. The caller must Close the returned connection.
func timerObject() (*dbus.Conn, dbus.BusObject) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Fatal("Failed to connect to session bus:", err)
	}
	return conn, conn.Object(ipc.ServiceName, dbus.ObjectPath(ipc.ObjectPath))
}
