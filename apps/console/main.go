package main

import (
	"fmt"
	"log"
	"os"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
	logsvc "github.com/schoolmed/console/services/logger"
	restsvc "github.com/schoolmed/console/services/rest"
	sessionsvc "github.com/schoolmed/console/services/session"
)

func main() {
	conf := core.NewConfig()

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(
			log.New(os.Stderr, "CONSOLE : ", log.LstdFlags|log.Lshortfile), conf)
	} else {
		logger = logsvc.NewZerologLogger(os.Stderr, conf)
	}

	store, closeStore, err := openStore(conf)
	if err != nil {
		logger.Fatal("opening session store failed", err)
	}
	defer closeStore()

	client := restsvc.NewClient(conf, store, logger,
		restsvc.WithSessionExpiredHook(func() {
			fmt.Fprintln(os.Stderr, "session expired, log in again with `schoolmed login`")
		}),
	)

	app := newApplication(conf, logger, store, client, os.Stdout)
	if err := newRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore(conf *core.Config) (auth.Store, func(), error) {
	switch conf.Session.Backend {
	case "sqlite":
		store, err := sessionsvc.OpenSQLiteStore(conf.Session.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return sessionsvc.NewFileStore(conf.Session.Path), func() {}, nil
	}
}
