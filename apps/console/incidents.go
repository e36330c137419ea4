package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/incident"
)

func newIncidentsCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "Manage health incidents",
	}
	cmd.AddCommand(
		newIncidentsListCmd(app),
		newIncidentsAddCmd(app),
		newIncidentsUpdateCmd(app),
		newIncidentsDeleteCmd(app),
	)
	return cmd
}

func newIncidentsListCmd(app *application) *cobra.Command {
	var studentID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents, optionally for one student",
		RunE: func(cmd *cobra.Command, args []string) error {
			var incidents []incident.Incident
			if studentID != "" {
				incidents = app.incidents.ByStudent(cmd.Context(), studentID)
			} else {
				incidents = app.incidents.QueryAll(cmd.Context())
			}
			rows := make([][]string, 0, len(incidents))
			for _, in := range incidents {
				rows = append(rows, []string{
					in.ID, in.StudentID, in.IncidentDate,
					orDash(in.Severity.String), in.Description,
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "STUDENT", "DATE", "SEVERITY", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&studentID, "student", "", "filter by student id")
	return cmd
}

func newIncidentsAddCmd(app *application) *cobra.Command {
	var ni incident.NewIncident
	var severity string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a health incident",
		Long: fmt.Sprintf(
			"Record a health incident. The incident date must be between %s and %s.",
			core.MinIncidentDate(), core.MaxIncidentDate()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if severity != "" {
				ni.Severity = null.StringFrom(severity)
			}
			created, err := app.incidents.Create(cmd.Context(), ni)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded incident %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ni.StudentID, "student", "", "student id")
	cmd.Flags().StringVar(&ni.IncidentDate, "date", core.Today(), "incident date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ni.Description, "description", "", "what happened")
	cmd.Flags().StringVar(&severity, "severity", "", "severity, e.g. MINOR or SEVERE")
	return cmd
}

func newIncidentsUpdateCmd(app *application) *cobra.Command {
	var ui incident.UpdateIncident
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.incidents.Update(cmd.Context(), args[0], ui)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated incident %s\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ui.IncidentDate, "date", "", "incident date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ui.Description, "description", "", "what happened")
	return cmd
}

func newIncidentsDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.incidents.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
