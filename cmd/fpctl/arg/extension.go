package arg

import (
	"fmt"

	"github.com/spf13/cobra"
)

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the pending break-extension offer",
	Run: func(cmd *cobra.Command, args []string) {
		call("AcceptExtension")
		fmt.Println("Break extension accepted")
	},
}

var declineCmd = &cobra.Command{
	Use:   "decline",
	Short: "Decline the pending break-extension offer",
	Run: func(cmd *cobra.Command, args []string) {
		call("DeclineExtension")
		fmt.Println("Break extension declined")
	},
}

func init() {
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(declineCmd)
}
