package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/tui"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Time your rest between sets",
	Long: `Run the rest timer.

Space starts the count and stops it again; stopping reports the elapsed
seconds and resets the clock to zero, ready for the next set. The timer
never records anything on its own: pass the reported value to
'gymlog log ... --rest N' to attach it to a set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.RunTimerTUI(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
