package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
	"github.com/schoolmed/console/core/healthinfo"
	"github.com/schoolmed/console/core/incident"
	"github.com/schoolmed/console/core/inventory"
	"github.com/schoolmed/console/core/notification"
	"github.com/schoolmed/console/core/schedule"
	"github.com/schoolmed/console/core/student"
	restsvc "github.com/schoolmed/console/services/rest"
)

// application bundles the wired services behind every console command.
type application struct {
	conf  *core.Config
	log   core.Logger
	store auth.Store
	out   io.Writer
	seq   *restsvc.Sequencer

	auth          *auth.Service
	students      *student.Service
	healthInfo    *healthinfo.Service
	incidents     *incident.Service
	inventory     *inventory.Service
	schedules     *schedule.Service
	notifications *notification.Service
}

func newApplication(conf *core.Config, log core.Logger, store auth.Store, client core.APIClient, out io.Writer) *application {
	return &application{
		conf:  conf,
		log:   log,
		store: store,
		out:   out,
		seq:   restsvc.NewSequencer(),

		auth:          auth.NewService(client, store),
		students:      student.NewService(client, store, log),
		healthInfo:    healthinfo.NewService(client, store, log),
		incidents:     incident.NewService(client, store, log),
		inventory:     inventory.NewService(client, store, log),
		schedules:     schedule.NewService(client, store, log),
		notifications: notification.NewService(client, store, log),
	}
}

// stockThresholds resolves the configured stock classification overrides.
func (app *application) stockThresholds() inventory.Thresholds {
	return inventory.Thresholds{
		Low:      app.conf.Stock.LowThreshold,
		Moderate: app.conf.Stock.ModerateThreshold,
	}
}

func newRootCmd(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolmed",
		Short:         "Administrative console for the school medical-management backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(app.out)

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStudentsCmd(app),
		newHealthInfoCmd(app),
		newIncidentsCmd(app),
		newInventoryCmd(app),
		newSchedulesCmd(app),
		newNotificationsCmd(app),
		newDashboardCmd(app),
	)
	return root
}
