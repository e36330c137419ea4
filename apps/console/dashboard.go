package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/schoolmed/console/core/auth"
	"github.com/schoolmed/console/core/inventory"
	"github.com/schoolmed/console/core/notification"
	"github.com/schoolmed/console/core/schedule"
	"github.com/schoolmed/console/core/student"
)

// dashboard polls a role-specific set of panels and repaints on every apply.
// Each fetch runs on its own goroutine carrying a sequencer token; a response
// that comes back after a newer fetch was issued for the same panel is
// discarded instead of clobbering fresher data.
type dashboard struct {
	app  *application
	sess auth.Session
	out  io.Writer

	mu     sync.Mutex
	order  []string
	panels map[string][]string
}

func newDashboardCmd(app *application) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Live overview, refreshed on the configured poll interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.auth.Current()
			if err != nil {
				return renderError(err)
			}
			d := &dashboard{
				app:    app,
				sess:   sess,
				out:    cmd.OutOrStdout(),
				panels: make(map[string][]string),
			}
			d.order = panelsForRole(sess.Role)

			ctx := cmd.Context()
			d.refresh(ctx, true /* wait */)
			if once {
				return nil
			}

			ticker := time.NewTicker(app.conf.API.PollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					d.refresh(ctx, false)
				}
			}
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "paint once and exit instead of polling")
	return cmd
}

func panelsForRole(role string) []string {
	switch role {
	case auth.RoleParent:
		return []string{"my-students", "my-schedules", "my-notifications"}
	case auth.RolePrincipal:
		return []string{"inventory", "notifications"}
	default: // nurse, admin
		return []string{"inventory", "schedules", "incidents", "notifications"}
	}
}

// refresh issues one tokened fetch per panel. The first paint waits for every
// panel so the operator never stares at an empty screen; later rounds apply
// as responses land.
func (d *dashboard) refresh(ctx context.Context, wait bool) {
	var wg sync.WaitGroup
	for _, panel := range d.order {
		panel := panel
		token := d.app.seq.Next(panel)
		wg.Add(1)
		go func() {
			defer wg.Done()
			lines := d.fetch(ctx, panel)
			d.apply(panel, token, lines)
		}()
	}
	if wait {
		wg.Wait()
	}
}

func (d *dashboard) apply(panel string, token uint64, lines []string) {
	if !d.app.seq.Latest(panel, token) {
		d.app.log.Debug("discarding stale response", panel)
		return
	}
	d.mu.Lock()
	d.panels[panel] = lines
	d.paintLocked()
	d.mu.Unlock()
}

func (d *dashboard) paintLocked() {
	var b strings.Builder
	fmt.Fprintf(&b, "== schoolmed dashboard (%s, %s) ==\n", d.sess.Subject, d.sess.Role)
	for _, panel := range d.order {
		fmt.Fprintf(&b, "\n[%s]\n", panel)
		lines := d.panels[panel]
		if len(lines) == 0 {
			b.WriteString("  (nothing)\n")
			continue
		}
		for _, line := range lines {
			b.WriteString("  " + line + "\n")
		}
	}
	fmt.Fprint(d.out, b.String())
}

func (d *dashboard) fetch(ctx context.Context, panel string) []string {
	switch panel {
	case "inventory":
		return d.inventoryLines(ctx)
	case "schedules":
		return scheduleLines(d.app.schedules.NurseAll(ctx))
	case "my-schedules":
		return scheduleLines(d.app.schedules.MyStudents(ctx))
	case "incidents":
		return d.incidentLines(ctx)
	case "my-students":
		return d.myStudentLines(ctx)
	case "notifications":
		return notificationLines(d.app.notifications.QueryAll(ctx))
	case "my-notifications":
		return notificationLines(d.app.notifications.My(ctx))
	}
	return nil
}

// inventoryLines surfaces only the items that need attention.
func (d *dashboard) inventoryLines(ctx context.Context) []string {
	th := d.app.stockThresholds()
	var lines []string
	for _, it := range d.app.inventory.QueryAll(ctx) {
		if status := it.Status(th); status != inventory.StatusGood {
			lines = append(lines, fmt.Sprintf("%s: %d %s left (%s)",
				it.MedicalItem.Name, it.TotalQuantity, it.MedicalItem.Unit, status))
		}
	}
	return lines
}

func (d *dashboard) incidentLines(ctx context.Context) []string {
	incidents := d.app.incidents.QueryAll(ctx)
	lines := make([]string, 0, len(incidents))
	for _, in := range incidents {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", in.IncidentDate, in.StudentID, in.Description))
	}
	return lines
}

func (d *dashboard) myStudentLines(ctx context.Context) []string {
	students := d.app.students.My(ctx)
	lines := make([]string, 0, len(students))
	for _, s := range students {
		lines = append(lines, studentLine(s))
	}
	return lines
}

func studentLine(s student.Student) string {
	age := "-"
	if a, err := s.Age(); err == nil {
		age = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s (%s, age %s)", s.FullName, s.ClassName, age)
}

func scheduleLines(schedules []schedule.Schedule) []string {
	lines := make([]string, 0, len(schedules))
	for _, s := range schedules {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			s.ScheduledDate, s.ScheduledTime, orDash(s.StudentName.String)))
	}
	return lines
}

func notificationLines(notifs []notification.Notification) []string {
	var lines []string
	for _, n := range notifs {
		if n.Read {
			continue
		}
		lines = append(lines, n.Title)
	}
	return lines
}
