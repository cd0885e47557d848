package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an API token",
	Long: `Sign in to the Gym Journal API with a bearer token.

The token is read from --token, or prompted for on stdin when the flag
is omitted. It is stored in the data directory and attached to every
authenticated request until 'gymlog logout'.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}

		token, _ := cmd.Flags().GetString("token")
		email, _ := cmd.Flags().GetString("email")

		if token == "" {
			fmt.Print("Token: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				reportError(err)
				return
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			fmt.Println("Error: a token is required to sign in")
			return
		}

		if _, err := a.sessions.SignIn(token, email); err != nil {
			reportError(err)
			return
		}

		// Confirm the token actually works before celebrating.
		user, err := a.client.Me(context.Background())
		if err != nil {
			_ = a.sessions.SignOut()
			fmt.Println("❌ The token was rejected by the server, session discarded")
			reportError(err)
			return
		}

		if user.Email != nil && *user.Email != "" {
			if _, err := a.sessions.SignIn(token, *user.Email); err != nil {
				reportError(err)
				return
			}
			fmt.Printf("✅ Signed in as %s\n", *user.Email)
		} else {
			fmt.Println("✅ Signed in")
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the local session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}
		if err := a.sessions.SignOut(); err != nil {
			reportError(err)
			return
		}
		fmt.Println("👋 Signed out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			reportError(err)
			return
		}

		sess, err := a.sessions.Current()
		if err != nil {
			reportError(err)
			return
		}

		user, err := a.client.Me(context.Background())
		if err != nil {
			// Offline or rejected: fall back to what we stored locally.
			if sess.Email != "" {
				fmt.Printf("%s (cached, server not reached)\n", sess.Email)
				return
			}
			reportError(err)
			return
		}

		if user.Email != nil {
			fmt.Println(*user.Email)
		} else {
			fmt.Println(user.ID)
		}
		if user.Role != "" {
			fmt.Printf("  Role: %s\n", user.Role)
		}
	},
}

func init() {
	loginCmd.Flags().StringP("token", "t", "", "API bearer token")
	loginCmd.Flags().StringP("email", "e", "", "Email to label the session with")
}
