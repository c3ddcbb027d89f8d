package arg

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/soracht/FocusPulse/internal/ipc"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check if FocusPulse is running and get timer status",
	Run: func(cmd *cobra.Command, args []string) {
		conn, obj := timerObject()
		defer conn.Close()

		method := ipc.InterfaceName + ".Status"
		if statusJSON {
			method = ipc.InterfaceName + ".StatusJSON"
		}

		var result string
		if err := obj.Call(method, 0).Store(&result); err != nil {
			log.Fatal("Failed to call method:", err)
		}

		fmt.Println(result)
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print raw JSON state")
	rootCmd.AddCommand(statusCmd)
}
