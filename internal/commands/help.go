package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for gymlog",
	Long:  `Display detailed help for all gymlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 ██████╗██╗   ██╗███╗   ███╗██╗      ██████╗  ██████╗
██╔════╝╚██╗ ██╔╝████╗ ████║██║     ██╔═══██╗██╔════╝
██║  ███╗╚████╔╝ ██╔████╔██║██║     ██║   ██║██║  ███╗
██║   ██║ ╚██╔╝  ██║╚██╔╝██║██║     ██║   ██║██║   ██║
╚██████╔╝  ██║   ██║ ╚═╝ ██║███████╗╚██████╔╝╚██████╔╝
 ╚═════╝   ╚═╝   ╚═╝     ╚═╝╚══════╝ ╚═════╝  ╚═════╝

gymlog - Terminal Gym Journal

COMMANDS:

  login                   Sign in with an API token
    -t, --token           Bearer token (prompted on stdin if omitted)
    -e, --email           Email to label the session with
  logout                  Discard the local session
  whoami                  Show the signed-in account

  log [exercise] [WxR]    Record a set
    -s, --serie           Set number within the exercise
    -r, --rest            Rest seconds before this set
    -n, --note            Observations for this set
    -i, --interactive     Step-by-step entry form

    Quick notation:
      80x8          Weight x reps
      22,5x12       Comma decimals accepted

    Examples:
      gymlog log                       (opens the form)
      gymlog log "Bench Press" 80x8 --serie 2 --rest 90

  timer                   Rest timer
    Quick actions:
      space         Start / stop (stop reports elapsed seconds)
      q             Quit

  history                 Browse your workout history
    -d, --date            today, yesterday, X days ago, dd/mm/yyyy
    --no-ui               Plain listing

    Quick actions:
      ↑/↓ or j/k    Navigate days
      enter         Expand / collapse
      d             Delete a set by id
      n             Rename the session
      e / m         Rate effort / mood (1-3, repeat to clear)
      f             Filter by date
      esc/q         Quit

  exercises               Browse the exercise catalog
    -s, --search          Match against names
    -m, --muscle-group    Filter by muscle group
    -e, --equipment       Filter by required equipment
    --no-ui               Plain listing
  equipment               Browse the equipment catalog
    --no-ui               Plain listing

  stats                   Show your training totals
  status                  Show backend, session and queue state
  sync                    Push locally queued sets to the backend
  version                 Show version information
  help                    Show this help

Use --no-ui flag with list commands for CLI-only mode.

`)
}
