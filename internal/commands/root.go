package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goalritmo/gymlog/internal/api"
	"github.com/goalritmo/gymlog/internal/config"
	"github.com/goalritmo/gymlog/internal/logging"
	"github.com/goalritmo/gymlog/internal/session"
	"github.com/goalritmo/gymlog/internal/store"
	"github.com/goalritmo/gymlog/internal/workspace"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gymlog",
	Short: "A terminal gym journal",
	Long: `gymlog is a terminal client for the Gym Journal API.
Log sets, time your rest, browse the exercise and equipment catalogs,
and review your workout history, with a local cache for when the
backend is unreachable.`,
}

// app bundles the wiring every command needs. The workspace owns the
// workout collections; commands and views mutate only through it.
type app struct {
	cfg      *config.Config
	sessions *session.Store
	client   *api.Client
	cache    *store.Store
	ws       *workspace.Workspace
}

// newApp loads config, sets up logging and builds the component graph.
func newApp() (*app, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Log.File, cfg.Log.Level)

	sessions, err := session.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API.BaseURL, sessions, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	// The cache is best-effort: without it everything still works,
	// there is just no offline fallback.
	cache, err := store.Open(cfg.DataDir)
	if err != nil {
		logrus.WithError(err).Warn("local cache unavailable, offline fallback disabled")
		cache = nil
	}

	return &app{
		cfg:      cfg,
		sessions: sessions,
		client:   client,
		cache:    cache,
		ws:       workspace.New(client, cache),
	}, nil
}

// reportError prints a user-facing message for a failed action. Auth
// errors prompt a re-login instead of being retried.
func reportError(err error) {
	if errors.Is(err, session.ErrNoSession) {
		fmt.Println("🔒 You are signed out. Run 'gymlog login' and try again.")
		return
	}
	if apiErr, ok := api.IsAPIError(err); ok && apiErr.StatusCode == 401 {
		fmt.Println("🔒 Your session is no longer valid. Run 'gymlog login' and try again.")
		return
	}
	fmt.Printf("Error: %v\n", err)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gymlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(equipmentCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
