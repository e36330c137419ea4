package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/schedule"
)

func newSchedulesCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "Manage medication schedules",
	}
	cmd.AddCommand(
		newSchedulesListCmd(app),
		newSchedulesAddCmd(app),
		newSchedulesUpdateCmd(app),
		newSchedulesDeleteCmd(app),
	)
	return cmd
}

func newSchedulesListCmd(app *application) *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules (--mine for the parent view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var schedules []schedule.Schedule
			if mine {
				schedules = app.schedules.MyStudents(cmd.Context())
			} else {
				schedules = app.schedules.NurseAll(cmd.Context())
			}
			rows := make([][]string, 0, len(schedules))
			for _, s := range schedules {
				rows = append(rows, []string{
					s.ID, orDash(s.StudentName.String), s.ScheduledDate,
					s.ScheduledTime, orDash(s.Notes.String),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "STUDENT", "DATE", "TIME", "NOTES"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "only schedules for the logged-in parent's students")
	return cmd
}

func newSchedulesAddCmd(app *application) *cobra.Command {
	var ns schedule.NewSchedule
	var inventoryID, notes string
	var deduct int
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Plan an administration for a confirmed medication request",
		Long: fmt.Sprintf(
			"Plan an administration for a confirmed medication request. The date may be "+
				"at most %s. Pass --inventory and --deduct together to also draw down stock.",
			core.MaxScheduleDate()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inventoryID != "" {
				ns.InventoryID = null.StringFrom(inventoryID)
			}
			if cmd.Flags().Changed("deduct") {
				ns.QuantityToDeduct = null.IntFrom(deduct)
			}
			if notes != "" {
				ns.Notes = null.StringFrom(notes)
			}
			created, err := app.schedules.Create(cmd.Context(), ns)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scheduled %s for %s %s\n",
				created.ID, created.ScheduledDate, created.ScheduledTime)
			return nil
		},
	}
	cmd.Flags().StringVar(&ns.RequestID, "request", "", "medication request id")
	cmd.Flags().StringVar(&ns.ScheduledDate, "date", "", "scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ns.ScheduledTime, "time", "", "scheduled time, e.g. 08:30")
	cmd.Flags().StringVar(&inventoryID, "inventory", "", "inventory record to deduct from")
	cmd.Flags().IntVar(&deduct, "deduct", 0, "quantity to deduct from the inventory record")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func newSchedulesUpdateCmd(app *application) *cobra.Command {
	var us schedule.UpdateSchedule
	var notes string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if notes != "" {
				us.Notes = null.StringFrom(notes)
			}
			updated, err := app.schedules.Update(cmd.Context(), args[0], us)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated schedule %s\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&us.ScheduledDate, "date", "", "scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&us.ScheduledTime, "time", "", "scheduled time")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func newSchedulesDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.schedules.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
