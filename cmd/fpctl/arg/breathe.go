package arg

import (
	"fmt"

	"github.com/spf13/cobra"
)

var breatheCmd = &cobra.Command{
	Use:   "breathe [pattern]",
	Short: "Run a guided breathing exercise",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "box"
		if len(args) > 0 {
			pattern = args[0]
		}
		call("Breathe", pattern)
		fmt.Printf("Breathing exercise started: %s\n", pattern)
	},
}

func init() {
	rootCmd.AddCommand(breatheCmd)
}
