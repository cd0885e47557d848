package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/api"
	"github.com/goalritmo/gymlog/internal/tui"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Browse the exercise catalog",
	Long: `Browse the exercise catalog.

The browser shows name, muscle groups and required equipment for each
exercise; press / to search. Filters are applied server-side:
  gymlog exercises --search press
  gymlog exercises --muscle-group chest --no-ui`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}
		defer closeCache(a)

		filter := api.ExerciseFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.MuscleGroup, _ = cmd.Flags().GetString("muscle-group")
		filter.Equipment, _ = cmd.Flags().GetString("equipment")

		exercises, err := a.client.Exercises(context.Background(), filter)
		if err != nil {
			reportError(err)
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			if len(exercises) == 0 {
				fmt.Println("No exercises match.")
				return
			}
			for _, ex := range exercises {
				fmt.Printf("[%d] %s", ex.ID, ex.Name)
				if ex.MuscleGroup != "" {
					fmt.Printf("  (%s)", ex.MuscleGroup)
				}
				if ex.Equipment != "" {
					fmt.Printf("  needs: %s", ex.Equipment)
				}
				fmt.Println()
			}
			return
		}

		if err := tui.RunCatalogTUI(tui.NewExerciseCatalogModel(exercises)); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	exercisesCmd.Flags().StringP("search", "s", "", "Match against exercise names")
	exercisesCmd.Flags().StringP("muscle-group", "m", "", "Filter by muscle group")
	exercisesCmd.Flags().StringP("equipment", "e", "", "Filter by required equipment")
	exercisesCmd.Flags().Bool("no-ui", false, "Print a plain listing instead of the browser")
}
