// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/meta"
)

// StatusCommandAction is the action handler for the "status" subcommand. It
// describes the local snapshot without touching the network, or removes it
// with --purge.
func StatusCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	store := m.Store()

	if cmd.Bool("purge") {
		if err := store.Purge(); err != nil {
			printf(m, "Could not remove %s: %v\n", store.Path(), err)
			return errExit
		}
		printf(m, "Removed %s\n", store.Path())
		return nil
	}

	printf(m, "Cache file: %s\n", store.Path())
	if !store.Exists() {
		printf(m, "No cached data. Run 'fishfry update' to fetch it.\n")
		return nil
	}

	venues, err := store.Load()
	if err != nil {
		printf(m, "Cached data is unreadable: %v\n", err)
		return nil
	}

	state := "stale"
	if store.Fresh() {
		state = "fresh"
	}

	printf(m, "Venues: %d\n", len(venues))
	printf(m, "Last updated: %s (%s, max age %s)\n",
		humanize.RelTime(store.ModTime(), m.Clock.Now(), "ago", "from now"),
		state,
		store.MaxAge)
	return nil
}

// StatusCommandBuilder constructs the cli.Command for "status".
func StatusCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "status",
		Usage:     "show local cache status",
		UsageText: "fishfry status [--purge]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "purge",
				Usage:       "delete the cached data",
				HideDefault: true,
			},
		},
		Action: StatusCommandAction,
		Meta:   meta,
	}).Build()
}
