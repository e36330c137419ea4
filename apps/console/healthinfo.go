package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core/healthinfo"
)

func newHealthInfoCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health-info",
		Short: "Manage standing student health records",
	}
	cmd.AddCommand(
		newHealthInfoListCmd(app),
		newHealthInfoStudentCmd(app),
		newHealthInfoSetCmd(app),
		newHealthInfoDeleteCmd(app),
	)
	return cmd
}

func newHealthInfoListCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List health records",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := app.healthInfo.QueryAll(cmd.Context())
			rows := make([][]string, 0, len(infos))
			for _, hi := range infos {
				rows = append(rows, []string{
					hi.ID, hi.StudentID, orDash(hi.BloodType.String),
					orDash(hi.Allergies.String), orDash(hi.ChronicDiseases.String),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "STUDENT", "BLOOD", "ALLERGIES", "CHRONIC"}, rows)
			return nil
		},
	}
}

func newHealthInfoStudentCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "student STUDENT_ID",
		Short: "Show the record attached to a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hi, err := app.healthInfo.ByStudent(cmd.Context(), args[0])
			if err != nil {
				return renderError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "record %s for student %s\n", hi.ID, hi.StudentID)
			fmt.Fprintf(out, "  blood: %s  vision: %s  hearing: %s\n",
				orDash(hi.BloodType.String), orDash(hi.Vision.String), orDash(hi.Hearing.String))
			fmt.Fprintf(out, "  allergies: %s\n", orDash(hi.Allergies.String))
			fmt.Fprintf(out, "  chronic: %s\n", orDash(hi.ChronicDiseases.String))
			fmt.Fprintf(out, "  notes: %s\n", orDash(hi.Notes.String))
			return nil
		},
	}
}

func newHealthInfoSetCmd(app *application) *cobra.Command {
	var (
		studentID string
		fields    = map[string]*string{
			"blood-type": new(string),
			"allergies":  new(string),
			"chronic":    new(string),
			"vision":     new(string),
			"hearing":    new(string),
			"notes":      new(string),
		}
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace a student's health record",
		RunE: func(cmd *cobra.Command, args []string) error {
			nhi := healthinfo.NewHealthInfo{StudentID: studentID}
			set := func(dst *null.String, flag string) {
				if v := *fields[flag]; v != "" {
					*dst = null.StringFrom(v)
				}
			}
			set(&nhi.BloodType, "blood-type")
			set(&nhi.Allergies, "allergies")
			set(&nhi.ChronicDiseases, "chronic")
			set(&nhi.Vision, "vision")
			set(&nhi.Hearing, "hearing")
			set(&nhi.Notes, "notes")

			created, err := app.healthInfo.Create(cmd.Context(), nhi)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved record %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&studentID, "student", "", "student id")
	for flag, dst := range fields {
		cmd.Flags().StringVar(dst, flag, "", flag)
	}
	return cmd
}

func newHealthInfoDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a health record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.healthInfo.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
