// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/filters"
	"github.com/staranto/fishfry/internal/meta"
)

const (
	maxDetails     = 5
	maxSuggestions = 5
)

// DetailsCommandAction is the action handler for the "details" subcommand.
// It prints full cards for venues whose name contains the query.
func DetailsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		printf(m, "Missing venue name.\nUsage: %s\n", cmd.UsageText)
		return errExit
	}

	venues, ok := loadVenues(ctx, m, false)
	if !ok {
		return errExit
	}

	matches := filters.MatchName(venues, query)
	if len(matches) == 0 {
		printf(m, "No venue found matching: %s\n", query)
		if suggestions := filters.Suggest(venues, query, maxSuggestions); len(suggestions) > 0 {
			printf(m, "\nDid you mean:\n")
			for _, s := range suggestions {
				printf(m, "  - %s\n", s)
			}
		}
		return errExit
	}

	if len(matches) > 1 {
		printf(m, "Multiple venues match '%s':\n\n", query)
	}
	if len(matches) > maxDetails {
		matches = matches[:maxDetails]
	}

	f := formatter(cmd, m)
	for _, v := range matches {
		printf(m, "%s\n\n", f.Details(v))
	}
	return nil
}

// DetailsCommandBuilder constructs the cli.Command for "details".
func DetailsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "details",
		Usage:     "get venue details",
		UsageText: "fishfry details <venue_name>",
		Flags:     []cli.Flag{NewColorFlag("details", meta.Config.Source)},
		Action:    DetailsCommandAction,
		Meta:      meta,
	}).Build()
}
