package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		user, err := c.Register(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s). Run `taskcli login` to sign in.\n", user.Username, user.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in and persist the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		user, err := c.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if err := saveToken(c.Token()); err != nil {
			return fmt.Errorf("logged in but could not persist the session: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the persisted token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		// Server-side failures never block the local logout.
		c.Logout(cmd.Context())
		if err := clearToken(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		if err := c.Init(cmd.Context()); err != nil {
			return err
		}

		user, ok := c.CurrentUser()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Username, user.Email)
		return nil
	},
}
