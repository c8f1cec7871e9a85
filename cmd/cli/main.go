package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contactdesk/internal/buildinfo"
	"github.com/dmitrijs2005/contactdesk/internal/client/cli"
	"github.com/dmitrijs2005/contactdesk/internal/client/config"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/sethvargo/go-envconfig"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, os.Args[1:], envconfig.OsLookuper())
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewZerologLogger(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "shell stopped", "error", err)
	}
}
