package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:  "feedhub",
		Usage: "Unified content feed with likes, comments and sponsored slots",
		Description: `Serves a single feed built from articles, community posts and
		advertisements, keeps engagement counters consistent and imports
		articles published by the upstream news fetcher.

		Configuration is read from a YAML file and can be overridden with
		FEEDHUB_* environment variables, e.g. FEEDHUB_DATABASE_HOST.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				EnvVars: []string{"FEEDHUB_CONFIG"},
				Value:   "config.yaml",
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			reconcileCmd(),
		},
	}
}
