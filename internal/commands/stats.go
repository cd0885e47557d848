package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your training totals",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}

		stats, err := a.client.MyStats(context.Background())
		if err != nil {
			reportError(err)
			return
		}

		fmt.Println("📊 Training totals")
		fmt.Printf("  Sets logged:   %d\n", stats.TotalWorkouts)
		fmt.Printf("  Sessions:      %d\n", stats.TotalSessions)
		fmt.Printf("  Workout days:  %d\n", stats.WorkoutDays)
		if stats.AvgEffort > 0 {
			fmt.Printf("  Avg effort:    %.1f/3\n", stats.AvgEffort)
		}
		if stats.AvgMood > 0 {
			fmt.Printf("  Avg mood:      %.1f/3\n", stats.AvgMood)
		}
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend, session and queue state",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}
		defer closeCache(a)

		if err := a.client.Health(context.Background()); err != nil {
			fmt.Printf("Backend:  ❌ unreachable (%s)\n", a.cfg.API.BaseURL)
		} else {
			fmt.Printf("Backend:  ✅ %s\n", a.cfg.API.BaseURL)
		}

		sess, err := a.sessions.Current()
		switch {
		case err == nil && sess.Email != "":
			fmt.Printf("Session:  signed in as %s\n", sess.Email)
		case err == nil:
			fmt.Println("Session:  signed in")
		case errors.Is(err, session.ErrNoSession):
			fmt.Println("Session:  signed out")
		default:
			fmt.Printf("Session:  error (%v)\n", err)
		}

		if a.cache == nil {
			fmt.Println("Queue:    local cache unavailable")
			return
		}
		pending, err := a.cache.Pending()
		if err != nil {
			fmt.Printf("Queue:    error (%v)\n", err)
			return
		}
		if len(pending) == 0 {
			fmt.Println("Queue:    empty")
		} else {
			fmt.Printf("Queue:    %d set(s) waiting, run 'gymlog sync'\n", len(pending))
		}
	},
}
