package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core/notification"
)

func newNotificationsCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Manage notifications",
	}
	cmd.AddCommand(
		newNotificationsListCmd(app),
		newNotificationsAddCmd(app),
		newNotificationsReadCmd(app),
		newNotificationsDeleteCmd(app),
	)
	return cmd
}

func newNotificationsListCmd(app *application) *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications (--mine for your own inbox)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var notifs []notification.Notification
			if mine {
				notifs = app.notifications.My(cmd.Context())
			} else {
				notifs = app.notifications.QueryAll(cmd.Context())
			}
			rows := make([][]string, 0, len(notifs))
			for _, n := range notifs {
				read := "unread"
				if n.Read {
					read = "read"
				}
				rows = append(rows, []string{n.ID, n.Title, orDash(n.Type.String), read})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "TYPE", "STATUS"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "only notifications addressed to you")
	return cmd
}

func newNotificationsAddCmd(app *application) *cobra.Command {
	var nn notification.NewNotification
	var typ string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish a notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if typ != "" {
				nn.Type = null.StringFrom(typ)
			}
			created, err := app.notifications.Create(cmd.Context(), nn)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published notification %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nn.Title, "title", "", "title")
	cmd.Flags().StringVar(&nn.Content, "content", "", "body text")
	cmd.Flags().StringVar(&typ, "type", "", "notification type")
	return cmd
}

func newNotificationsReadCmd(app *application) *cobra.Command {
	var unread bool
	cmd := &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification read (--undo to mark unread)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.notifications.SetReadStatus(cmd.Context(), args[0], !unread)
			if err != nil {
				return renderError(err)
			}
			state := "read"
			if !updated.Read {
				state = "unread"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "notification %s marked %s\n", updated.ID, state)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unread, "undo", false, "mark unread instead")
	return cmd
}

func newNotificationsDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.notifications.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
