// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/config"
	"github.com/staranto/fishfry/internal/meta"
)

// InitApp loads the config for the requested subcommand and builds the
// command tree.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the fishfry
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load(ns)
	if err != nil {
		log.Debugf("config: %v", err)
	}

	return NewApp(meta.New(ctx, args, cfg)), nil
}

// NewApp builds the command tree around m. Exit codes are left for the caller
// to map, so nothing here calls os.Exit.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "fishfry",
		Usage:     "Pittsburgh Fish Fry Finder",
		UsageText: "fishfry <command> [options]",
		Writer:    m.Stdout,
		ErrWriter: m.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "fishfry version info",
				HideDefault: true,
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app.Commands = append(app.Commands,
		SearchCommandBuilder(m),
		ListCommandBuilder(m),
		DetailsCommandBuilder(m),
		ScheduleCommandBuilder(m),
		UpdateCommandBuilder(m),
		StatusCommandBuilder(m),
		CompletionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
