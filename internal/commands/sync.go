package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push locally queued sets to the backend",
	Long: `Push sets that were queued while the backend was unreachable.

Queued sets are pushed oldest first; the first failure stops the run so
nothing is skipped or reordered.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}
		defer closeCache(a)

		ctx := context.Background()
		if err := a.ws.Refresh(ctx); err != nil {
			reportError(err)
			return
		}

		pushed, err := a.ws.Sync(ctx)
		if pushed > 0 {
			fmt.Printf("⬆️  Pushed %d queued set(s)\n", pushed)
		}
		if err != nil {
			reportError(err)
			return
		}
		if pushed == 0 {
			fmt.Println("Nothing to sync.")
		}
	},
}
