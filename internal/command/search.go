// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/filters"
	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/output"
)

// SearchCommandAction is the action handler for the "search" subcommand. It
// geocodes the location, filters by amenity and shows the nearest venues.
func SearchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	location := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if location == "" {
		printf(m, "Missing location.\nUsage: %s\n", cmd.UsageText)
		return errExit
	}

	venues, ok := loadVenues(ctx, m, false)
	if !ok {
		return errExit
	}

	origin, err := m.Geocoder().Resolve(ctx, location)
	if err != nil {
		log.WithError(err).Debug("geocode")
		eprintf(m, "Geocoding failed: %v\n", err)
		printf(m, "Could not find location: %s\n", location)
		return errExit
	}
	eprintf(m, "Searching near: %s (%s)\n\n", location, origin)

	filtered := filters.Filter(venues, filterFlags(cmd))
	ranked := filters.Rank(filtered, origin)
	shown := filters.Limit(ranked, cmd.Int("limit"))

	format := cmd.String("output")
	if format != "text" {
		return emit(cmd, m, output.FromRanked(shown))
	}

	if len(ranked) == 0 {
		printf(m, "No fish fries found matching your criteria.\n")
		return nil
	}

	printf(m, "Found %d fish fries. Showing nearest %d:\n\n", len(ranked), len(shown))
	return emit(cmd, m, output.FromRanked(shown))
}

// SearchCommandBuilder constructs the cli.Command for "search".
func SearchCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(NewFilterFlags(), NewLimitFlag("search", meta.Config.Source))
	flags = append(flags, NewOutputFlags("search", meta.Config.Source)...)

	return (&CommandBuilder{
		Name:      "search",
		Usage:     "search near a location",
		UsageText: "fishfry search <location> [--pierogies] [--accessible] [--alcohol] [--takeout] [--limit N]",
		Flags:     flags,
		Action:    SearchCommandAction,
		Meta:      meta,
	}).Build()
}
