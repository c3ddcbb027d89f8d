package arg

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var hrCmd = &cobra.Command{
	Use:   "hr <bpm>",
	Short: "Push a heart-rate sample to the daemon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bpm, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatal("Invalid heart rate:", err)
		}
		call("PushHeartRate", time.Now().UnixMilli(), bpm)
		fmt.Printf("Heart rate sample sent: %.0f bpm\n", bpm)
	},
}

var hrvCmd = &cobra.Command{
	Use:   "hrv <ms>",
	Short: "Push a heart-rate-variability sample to the daemon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hrv, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatal("Invalid HRV:", err)
		}
		call("PushHRV", time.Now().UnixMilli(), hrv)
		fmt.Printf("HRV sample sent: %.0f ms\n", hrv)
	},
}

func init() {
	rootCmd.AddCommand(hrCmd)
	rootCmd.AddCommand(hrvCmd)
}
