package main

import (
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/urfave/cli/v2"

	"github.com/utopos/fieldset/internal/lint"
)

func main() {
	app := &cli.App{
		Name:  "fieldlint",
		Usage: "validate field-set literals against struct declarations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .fieldset.yaml config",
			},
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "directory to scan",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the report as JSON",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fieldlint: %s\n", err)
		os.Exit(2)
	}
}

func run(c *cli.Context) error {
	ctx := c.Context
	if c.Bool("debug") {
		if err := log.SetLevel("debug"); err != nil {
			return err
		}
	}

	cfg := lint.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = lint.LoadConfig(path)
		if err != nil {
			return cli.Exit(err, 2)
		}
	}

	rep, err := lint.Run(ctx, cfg, c.String("dir"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("fieldlint: %s", err), 2)
	}
	log.G(ctx).WithField("run_id", rep.RunID).WithField("sites", rep.Sites).Debug("lint run finished")

	if c.Bool("json") {
		if err := rep.WriteJSON(os.Stdout); err != nil {
			return cli.Exit(err, 2)
		}
	} else if err := rep.WriteText(os.Stdout); err != nil {
		return cli.Exit(err, 2)
	}

	if !rep.Clean() {
		return cli.Exit("", 1)
	}
	return nil
}
