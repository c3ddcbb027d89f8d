package arg

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Select the active preset (only honored while idle)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		call("SelectPreset", args[0])
		fmt.Printf("Preset selected: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
}
