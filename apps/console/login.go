package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var readPasswordFunc = term.ReadPassword // mockable

func newLoginCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Enter password:")
			pwd, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			sess, err := app.auth.Login(cmd.Context(), args[0], string(pwd))
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", args[0], sess.Role)
			return nil
		},
	}
}

func newLogoutCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.auth.Current()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "subject=%s role=%s", sess.Subject, sess.Role)
			if !sess.ExpiresAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), " expires=%s", sess.ExpiresAt.Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
