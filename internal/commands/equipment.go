package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/tui"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Browse the equipment catalog",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}
		defer closeCache(a)

		equipment, err := a.client.Equipment(context.Background())
		if err != nil {
			reportError(err)
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			if len(equipment) == 0 {
				fmt.Println("No equipment registered.")
				return
			}
			for _, eq := range equipment {
				fmt.Printf("[%d] %s", eq.ID, eq.Name)
				if eq.Category != "" {
					fmt.Printf("  (%s)", eq.Category)
				}
				fmt.Println()
			}
			return
		}

		if err := tui.RunCatalogTUI(tui.NewEquipmentCatalogModel(equipment)); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	equipmentCmd.Flags().Bool("no-ui", false, "Print a plain listing instead of the browser")
}
