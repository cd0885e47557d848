package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/models"
	"github.com/goalritmo/gymlog/internal/parser"
	"github.com/goalritmo/gymlog/internal/tui"
	"github.com/goalritmo/gymlog/internal/workspace"
)

var logCmd = &cobra.Command{
	Use:   "log [exercise] [WEIGHTxREPS]",
	Short: "Record a set",
	Long: `Record a workout set.

Modes:
  Interactive: gymlog log -i (or just 'gymlog log' with no arguments)
  Quick: gymlog log "Bench Press" 80x8 (with optional flags)

Quick notation:
  WEIGHTxREPS - e.g. 80x8, 22.5x12 (comma decimals also accepted)

The set is attached to today's workout session, which is created on the
first set of the day. When the backend is unreachable the set is queued
locally and pushed by 'gymlog sync'.`,
	Args: cobra.ArbitraryArgs,
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
		if err := a.ws.LoadCatalog(ctx); err != nil {
			reportError(err)
			return
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) < 2 || interactive {
			runInteractiveLog(cmd, a)
			return
		}
		runQuickLog(cmd, a, args)
	},
}

// runInteractiveLog opens the step-by-step entry form
func runInteractiveLog(cmd *cobra.Command, a *app) {
	rest, _ := cmd.Flags().GetInt("rest")

	submit := func(req workspace.SubmitRequest) error {
		_, err := a.ws.SubmitSet(context.Background(), req)
		return err
	}
	if err := tui.RunEntryFormTUI(a.ws.Exercises(), rest, submit); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runQuickLog records a set directly without the TUI
func runQuickLog(cmd *cobra.Command, a *app, args []string) {
	notation := args[len(args)-1]
	name := strings.Join(args[:len(args)-1], " ")

	parsed, err := parser.ParseSetNotation(notation)
	if err != nil {
		fmt.Printf("⚠️  %v\n", err)
		fmt.Println("Opening interactive mode instead...")
		runInteractiveLog(cmd, a)
		return
	}

	exercise, err := resolveExercise(a.ws.Exercises(), name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	req := workspace.SubmitRequest{
		ExerciseID: exercise.ID,
		Weight:     parsed.Weight,
		Reps:       parsed.Reps,
	}
	if serie, _ := cmd.Flags().GetInt("serie"); serie > 0 {
		req.Serie = &serie
	}
	if rest, _ := cmd.Flags().GetInt("rest"); rest > 0 {
		req.Seconds = &rest
	}
	if note, _ := cmd.Flags().GetString("note"); note != "" {
		req.Observations = &note
	}

	_, err = a.ws.SubmitSet(context.Background(), req)
	if errors.Is(err, workspace.ErrQueuedOffline) {
		fmt.Printf("📦 Backend unreachable, queued %s %gx%d locally (run 'gymlog sync' later)\n",
			exercise.Name, parsed.Weight, parsed.Reps)
		return
	}
	if err != nil {
		reportError(err)
		return
	}
	fmt.Printf("✅ Logged %s %gx%d\n", exercise.Name, parsed.Weight, parsed.Reps)
}

// resolveExercise matches a catalog exercise by name, case-insensitive.
// An exact match wins, otherwise the match must be unique.
func resolveExercise(exercises []models.Exercise, name string) (*models.Exercise, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, fmt.Errorf("an exercise name is required")
	}

	var matches []models.Exercise
	for _, ex := range exercises {
		lower := strings.ToLower(ex.Name)
		if lower == query {
			e := ex
			return &e, nil
		}
		if strings.Contains(lower, query) {
			matches = append(matches, ex)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no exercise matches %q (see 'gymlog exercises')", name)
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, ex := range matches {
			names = append(names, ex.Name)
		}
		return nil, fmt.Errorf("%q is ambiguous: %s", name, strings.Join(names, ", "))
	}
}

func closeCache(a *app) {
	if a.cache != nil {
		_ = a.cache.Close()
	}
}

func init() {
	logCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	logCmd.Flags().IntP("serie", "s", 0, "Set number within the exercise")
	logCmd.Flags().IntP("rest", "r", 0, "Rest seconds before this set")
	logCmd.Flags().StringP("note", "n", "", "Observations for this set")
}
