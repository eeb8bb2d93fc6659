// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/schedule"
)

// ScheduleCommandAction is the action handler for the "schedule" subcommand.
// It lists venues with an event on the requested day, next Friday by default.
func ScheduleCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	venues, ok := loadVenues(ctx, m, false)
	if !ok {
		return errExit
	}

	arg := cmd.Args().First()
	day, err := schedule.Resolve(arg, m.Clock.Now())
	if err != nil {
		printf(m, "Could not parse date: %s\n%s\n", arg, schedule.Usage)
		return errExit
	}

	printf(m, "Fish fries on %s:\n\n", day.Format("Monday, January 02, 2006"))

	happening := schedule.On(venues, day)
	if len(happening) == 0 {
		printf(m, "No fish fries scheduled for this date in our data.\n")
		printf(m, "Note: Event data may be from a previous year. Check venue websites for current schedules.\n")
		return nil
	}

	printf(m, "Found %d fish fries:\n\n", len(happening))

	f := formatter(cmd, m)
	for _, h := range happening {
		printf(m, "%s\n\n", f.ScheduleEntry(h.Venue, h.Event))
	}
	return nil
}

// ScheduleCommandBuilder constructs the cli.Command for "schedule".
func ScheduleCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "schedule",
		Usage:     "show schedule for a date",
		UsageText: "fishfry schedule [today|tomorrow|friday|YYYY-MM-DD]",
		Flags:     []cli.Flag{NewColorFlag("schedule", meta.Config.Source)},
		Action:    ScheduleCommandAction,
		Meta:      meta,
	}).Build()
}
