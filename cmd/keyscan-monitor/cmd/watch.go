package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisChrisLoLo/keyberon/host/link"
	"github.com/ChrisChrisLoLo/keyberon/wire"
)

var eventsOnly bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream the live switch grid from the serial device",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&eventsOnly, "events", "e", false,
		"print per-key press/release events instead of the full grid")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := link.DefaultConfig(device)
	cfg.Baud = baud

	port, err := link.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("Watching %s (press Ctrl-C to stop)\n", device)

	fr := link.NewFrameReader(port)
	var prev [][]bool
	for {
		grid, err := fr.Next()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		if eventsOnly {
			for _, ev := range wire.Diff(prev, grid) {
				action := "released"
				if ev.Pressed {
					action = "pressed"
				}
				fmt.Printf("key (%d,%d) %s\n", ev.Row, ev.Col, action)
			}
		} else {
			fmt.Println(renderGrid(grid))
		}
		prev = grid
	}
}

// renderGrid draws the grid one row per line, '#' for pressed keys.
func renderGrid(grid [][]bool) string {
	var b strings.Builder
	for _, row := range grid {
		for _, pressed := range row {
			if pressed {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
