// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/differ"
	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/source"
)

// UpdateCommandAction is the action handler for the "update" subcommand. It
// refetches the dataset regardless of cache age and, when a previous snapshot
// existed, summarizes what changed.
func UpdateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	store := m.Store()

	previous, prevErr := store.Load()
	prevTime := store.ModTime()

	result := m.Loader().Load(ctx, true)
	printf(m, "Updated cache with %d venues.\n", len(result.Venues))

	if result.Origin != source.OriginRemote || prevErr != nil {
		return nil
	}

	sum, err := differ.Compare(previous, result.Venues)
	if err != nil {
		log.WithError(err).Warn("unable to compare snapshots")
		return nil
	}

	if sum.Empty() {
		printf(m, "No changes since %s.\n", humanize.RelTime(prevTime, m.Clock.Now(), "ago", "from now"))
		return nil
	}
	printf(m, "Changes since %s: %s.\n", humanize.RelTime(prevTime, m.Clock.Now(), "ago", "from now"), sum)
	return nil
}

// UpdateCommandBuilder constructs the cli.Command for "update".
func UpdateCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "update",
		Usage:     "update local data cache",
		UsageText: "fishfry update",
		Action:    UpdateCommandAction,
		Meta:      meta,
	}).Build()
}
