package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	device string
	baud   int
)

var rootCmd = &cobra.Command{
	Use:   "keyscan-monitor",
	Short: "Watch matrix scan snapshots streamed by a scanning MCU",
	Long: `keyscan-monitor decodes the snapshot frames a keyboard matrix
scanner writes to its UART and renders the switch grid on the terminal.

Examples:
  keyscan-monitor watch                          # Watch /dev/ttyACM0
  keyscan-monitor watch --device /dev/ttyUSB0    # Watch another port
  keyscan-monitor watch --events                 # Print per-key events only`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&device, "device", "d", "/dev/ttyACM0", "serial device path")
	rootCmd.PersistentFlags().IntVarP(&baud, "baud", "b", 115200, "baud rate (ignored for USB CDC)")
}
