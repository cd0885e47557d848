package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/history"
	"github.com/goalritmo/gymlog/internal/parser"
	"github.com/goalritmo/gymlog/internal/tui"
	"github.com/goalritmo/gymlog/internal/workspace"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse your workout history",
	Long: `Browse your workout history grouped by session.

Each day card shows the session name, effort and mood ratings, and the
sets grouped by exercise. Inside the browser: j/k to move, enter to
expand, d to delete a set, n to rename the session, e/m to rate effort
or mood (press the current value again to clear it), f to filter by
date.

Use --date with --no-ui for a plain listing of a single day:
  gymlog history --date today
  gymlog history --date "2 days ago" --no-ui
  gymlog history --date 15/03/2026 --no-ui`,
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

		dateArg, _ := cmd.Flags().GetString("date")
		date, err := parser.ParseHistoryDate(dateArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			printHistory(a.ws.DaysOn(date), a.ws.Stale())
			return
		}

		actions := tui.HistoryActions{
			DeleteSet: func(id int) error {
				return a.ws.DeleteSet(context.Background(), id)
			},
			RenameSession: func(sessionID int, name string) error {
				return a.ws.RenameSession(context.Background(), sessionID, name)
			},
			ApplyRating: func(sessionID int, field workspace.RatingField, value int) error {
				return a.ws.ApplyRating(context.Background(), sessionID, field, value)
			},
			Reload: func() []history.WorkoutDay {
				return a.ws.Days()
			},
		}

		if err := tui.RunHistoryTUI(a.ws.DaysOn(date), a.ws.Stale(), actions); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// printHistory writes a plain listing, one day card per session
func printHistory(days []history.WorkoutDay, stale bool) {
	if stale {
		fmt.Println("(offline copy, may be stale)")
	}
	if len(days) == 0 {
		fmt.Println("No workouts recorded yet. Use 'gymlog log' to save your first set.")
		return
	}

	for _, day := range days {
		name := day.Session.SessionName
		if name == "" {
			name = "Workout"
		}
		fmt.Printf("%s  %s", day.Day(), name)
		if day.Session.Effort > 0 {
			fmt.Printf("  effort %d/3", day.Session.Effort)
		}
		if day.Session.Mood > 0 {
			fmt.Printf("  mood %d/3", day.Session.Mood)
		}
		fmt.Println()

		for _, group := range day.ExerciseGroups {
			fmt.Printf("  %s\n", group.ExerciseName)
			for _, set := range group.Sets {
				line := fmt.Sprintf("    [%d] %gx%d", set.ID, set.Weight, set.Reps)
				if set.Seconds != nil {
					line += fmt.Sprintf("  rest %ds", *set.Seconds)
				}
				if set.Observations != nil && strings.TrimSpace(*set.Observations) != "" {
					line += "  " + *set.Observations
				}
				fmt.Println(line)
			}
		}
		fmt.Println()
	}
}

func init() {
	historyCmd.Flags().StringP("date", "d", "", "Only this day: today, yesterday, X days ago, dd/mm/yyyy")
	historyCmd.Flags().Bool("no-ui", false, "Print a plain listing instead of the browser")
}
