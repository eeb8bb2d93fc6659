// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/filters"
	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/output"
)

// ListCommandAction is the action handler for the "list" subcommand. It shows
// every venue passing the amenity filters, sorted by name.
func ListCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	venues, ok := loadVenues(ctx, m, false)
	if !ok {
		return errExit
	}

	listed := filters.ByName(filters.Filter(venues, filterFlags(cmd)))

	format := cmd.String("output")
	if format != "text" {
		return emit(cmd, m, output.FromVenues(listed))
	}

	if len(listed) == 0 {
		printf(m, "No fish fries found matching your criteria.\n")
		return nil
	}

	printf(m, "Found %d fish fries:\n\n", len(listed))
	return emit(cmd, m, output.FromVenues(listed))
}

// ListCommandBuilder constructs the cli.Command for "list".
func ListCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "list",
		Usage:     "list all fish fries",
		UsageText: "fishfry list [--pierogies] [--accessible] [--alcohol] [--takeout]",
		Flags:     append(NewFilterFlags(), NewOutputFlags("list", meta.Config.Source)...),
		Action:    ListCommandAction,
		Meta:      meta,
	}).Build()
}
