package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core/student"
)

func newStudentsCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Manage student records",
	}
	cmd.AddCommand(
		newStudentsListCmd(app),
		newStudentsGetCmd(app),
		newStudentsAddCmd(app),
		newStudentsUpdateCmd(app),
		newStudentsDeleteCmd(app),
	)
	return cmd
}

func newStudentsListCmd(app *application) *cobra.Command {
	var (
		page, size int
		sort       string
		mine       bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students (paged; --mine for the parent view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mine {
				renderStudents(app, cmd, app.students.My(cmd.Context()))
				return nil
			}
			p := app.students.Query(cmd.Context(), student.Query{Page: page, Size: size, Sort: sort})
			renderStudents(app, cmd, p.Content)
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d (%d pages)\n", p.TotalElements, p.TotalPages)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	cmd.Flags().StringVar(&sort, "sort", "", "sort expression, e.g. fullName,asc")
	cmd.Flags().BoolVar(&mine, "mine", false, "only students linked to the logged-in parent")
	return cmd
}

func renderStudents(app *application, cmd *cobra.Command, students []student.Student) {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		age := "-"
		if a, err := s.Age(); err == nil {
			age = strconv.Itoa(a)
		}
		confirmed := "no"
		if s.IsConfirm {
			confirmed = "yes"
		}
		rows = append(rows, []string{s.ID, s.Code, s.FullName, s.ClassName, s.DateOfBirth, age, confirmed})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "CODE", "NAME", "CLASS", "BORN", "AGE", "CONFIRMED"}, rows)
}

func newStudentsGetCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.students.GetByID(cmd.Context(), args[0])
			if err != nil {
				return renderError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", s.FullName, s.Code)
			fmt.Fprintf(out, "  class: %s  born: %s  gender: %s\n", s.ClassName, s.DateOfBirth, s.Gender)
			fmt.Fprintf(out, "  blood: %s  height: %s cm  weight: %s kg\n",
				orDash(s.BloodType.String), nullFloat(s.HeightCm), nullFloat(s.WeightKg))
			fmt.Fprintf(out, "  confirmed: %v\n", s.IsConfirm)
			return nil
		},
	}
}

func nullFloat(f null.Float64) string {
	if !f.Valid {
		return "-"
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

func newStudentsAddCmd(app *application) *cobra.Command {
	var ns student.NewStudent
	var bloodType string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bloodType != "" {
				ns.BloodType = null.StringFrom(bloodType)
			}
			created, err := app.students.Create(cmd.Context(), ns)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created student %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ns.Code, "code", "", "student code")
	cmd.Flags().StringVar(&ns.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&ns.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ns.Gender, "gender", "", "MALE, FEMALE or OTHER")
	cmd.Flags().StringVar(&ns.ClassName, "class", "", "class name")
	cmd.Flags().StringVar(&bloodType, "blood-type", "", "blood type")
	return cmd
}

func newStudentsUpdateCmd(app *application) *cobra.Command {
	var us student.UpdateStudent
	var confirm bool
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("confirm") {
				us.IsConfirm = &confirm
			}
			updated, err := app.students.Update(cmd.Context(), args[0], us)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated student %s\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&us.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&us.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&us.ClassName, "class", "", "class name")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "set the confirmation flag")
	return cmd
}

func newStudentsDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.students.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
