package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/juju/errors"
	"github.com/katalvlaran/roadledger/console"
	"github.com/katalvlaran/roadledger/core"
	"github.com/katalvlaran/roadledger/metrics"
	"github.com/katalvlaran/roadledger/snapshot"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	Version   = "dev"
	GitCommit = "-"
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s(%s)", Version, GitCommit)
	app.Name = "roadledger"
	app.Usage = "Interactive registry of Rwandan cities, the roads between them and road budgets"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "log.json",
			Usage: "[optional] Log as JSON",
		},
		cli.BoolFlag{
			Name:  "log.debug",
			Usage: "[optional] Log debug info",
		},
		cli.StringFlag{
			Name:  "dir",
			Usage: "[optional] Directory receiving cities.txt and roads.txt",
			Value: ".",
		},
		cli.StringFlag{
			Name:  "sqlite",
			Usage: "[optional] SQLite database mirroring every snapshot",
		},
		cli.StringFlag{
			Name:  "metrics-file",
			Usage: "[optional] Write Prometheus metrics to this file on exit",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("log.json") {
			log.SetFormatter(&log.JSONFormatter{})
		} else {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		}

		if c.Bool("log.debug") {
			log.SetLevel(log.DebugLevel)
		}

		// Stdout carries the interactive menu.
		log.SetOutput(os.Stderr)

		return nil
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, closeSink, err := buildSink(c)
	if err != nil {
		return err
	}
	defer closeSink()

	g, err := core.NewSeededGraph()
	if err != nil {
		return errors.Annotate(err, "unable to load seed data")
	}
	logStats(g, "seed data loaded")

	recorder := metrics.NewRecorder()
	con := console.New(g, os.Stdin, os.Stdout,
		console.WithSink(sink),
		console.WithLogger(log.StandardLogger()),
		console.WithRecorder(recorder),
	)
	// A failed initial save is reported by the console and is not fatal.
	con.Save(ctx)

	runErr := con.Run(ctx)
	if stderrors.Is(runErr, context.Canceled) {
		log.Info("interrupted")
		runErr = nil
	}
	logStats(g, "session ended")

	if path := c.String("metrics-file"); path != "" {
		if err := recorder.WriteTextfile(path); err != nil {
			log.WithError(err).WithField("path", path).Error("unable to write metrics file")
		}
	}

	return runErr
}

func buildSink(c *cli.Context) (snapshot.Sink, func(), error) {
	files, err := snapshot.NewFileSink(c.String("dir"), snapshot.WithFileLogger(log.StandardLogger()))
	if err != nil {
		return nil, nil, err
	}
	log.WithField("dir", files.Dir()).Info("writing snapshots")

	path := c.String("sqlite")
	if path == "" {
		return files, func() {}, nil
	}
	db, err := snapshot.OpenSQLite(path, log.StandardLogger())
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("unable to close sqlite db")
		}
	}

	return snapshot.Multi(files, db), closeDB, nil
}

func logStats(g *core.Graph, msg string) {
	s := g.Stats()
	log.WithFields(log.Fields{
		"cities":       s.CityCount,
		"roads":        s.RoadCount,
		"budgeted":     s.BudgetedRoadCount,
		"total_budget": s.TotalBudget,
	}).Info(msg)
}
