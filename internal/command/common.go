// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/filters"
	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/output"
	"github.com/staranto/fishfry/internal/venue"
)

// errExit exits 1 once the command has already told the user why.
var errExit = cli.Exit("", 1)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr fishfry <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "fishfry", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// printf writes a user facing line to the command's stdout.
func printf(m meta.Meta, format string, args ...any) {
	fmt.Fprintf(m.Stdout, format, args...)
}

// eprintf writes a diagnostic line to the command's stderr.
func eprintf(m meta.Meta, format string, args ...any) {
	fmt.Fprintf(m.Stderr, format, args...)
}

// loadVenues runs the cache policy and reports "no data" on stdout when
// nothing could be loaded. The bool is false when the caller should exit 1.
func loadVenues(ctx context.Context, m meta.Meta, force bool) ([]venue.Venue, bool) {
	result := m.Loader().Load(ctx, force)
	log.Debugf("loaded %d venues from %s", len(result.Venues), result.Origin)
	if result.Err != nil {
		log.WithError(result.Err).Debug("fetch failed")
	}

	if len(result.Venues) == 0 {
		printf(m, "No fish fry data available.\n")
		return nil, false
	}
	return result.Venues, true
}

// filterFlags reads the amenity switches shared by search and list.
func filterFlags(cmd *cli.Command) filters.Flags {
	return filters.Flags{
		Pierogies:  cmd.Bool("pierogies"),
		Accessible: cmd.Bool("accessible"),
		Alcohol:    cmd.Bool("alcohol"),
		Takeout:    cmd.Bool("takeout"),
	}
}

// formatter builds the card renderer honoring --color and the terminal.
func formatter(cmd *cli.Command, m meta.Meta) output.Formatter {
	return output.NewFormatter(output.UseColor(cmd.Bool("color"), m.Stdout))
}

// emit writes entries in the --output format. Table output honors --attrs.
func emit(cmd *cli.Command, m meta.Meta, entries []output.Entry) error {
	f := formatter(cmd, m)
	format := cmd.String("output")

	if format == "table" {
		columns, err := output.Columns(entries, cmd.String("attrs"))
		if err != nil {
			printf(m, "Bad --attrs: %v\n", err)
			return errExit
		}
		f = f.WithColumns(columns)
	}

	return output.Emit(m.Stdout, format, entries, f)
}

// CommandBuilder is a helper that constructs a cli.Command for the fishfry
// subcommands using a consistent pattern. It wires metadata, adds the tldr
// flag and sets up validators.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: append(cb.Flags, newTLDRFlag()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if ShortCircuitTLDR(ctx, c, cb.Name) {
				return nil
			}
			log.Debugf("executing %s with args %v", cb.Name, c.Args().Slice())
			return cb.Action(ctx, c)
		},
	}
}
