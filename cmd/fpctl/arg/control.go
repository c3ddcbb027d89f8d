package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/soracht/FocusPulse/internal/ipc"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume the timer",
	Run: func(cmd *cobra.Command, args []string) {
		call("Start")
		fmt.Println("Timer started")
	},
}

var pauseCmd = &cobra.Command{
	Use:     "pause",
	Aliases: []string{"p"},
	Short:   "Pause the running timer",
	Run: func(cmd *cobra.Command, args []string) {
		call("Pause")
		fmt.Println("Timer paused")
	},
}

var resumeCmd = &cobra.Command{
	Use:     "resume",
	Aliases: []string{"r"},
	Short:   "Resume a paused timer",
	Run: func(cmd *cobra.Command, args []string) {
		call("Resume")
		fmt.Println("Timer resumed")
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and reset to an idle focus phase",
	Run: func(cmd *cobra.Command, args []string) {
		call("Stop")
		fmt.Println("Timer stopped")
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the rest of the current phase",
	Run: func(cmd *cobra.Command, args []string) {
		call("Skip")
		fmt.Println("Phase skipped")
	},
}

// call invokes a no-argument daemon method.
func call(method string, args ...interface{}) {
	conn, obj := timerObject()
	defer conn.Close()

	if err := obj.Call(ipc.InterfaceName+"."+method, 0, args...).Err; err != nil {
		log.Fatal("Failed to call method:", err)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(skipCmd)
}
