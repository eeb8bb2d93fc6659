// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/fishfry/internal/venue"
)

// ErrBadDate is returned when a date argument can't be understood.
var ErrBadDate = errors.New("could not parse date")

// Cutoff is the hour after which "next Friday" on a Friday means next week.
const Cutoff = 20

// Usage lists the date forms Resolve accepts.
const Usage = "Use: today, tomorrow, friday, or YYYY-MM-DD"

// layouts are tried in order by ParseTimestamp.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Resolve turns a date argument into a calendar day relative to now. The
// result is midnight of that day in now's location.
func Resolve(arg string, now time.Time) (time.Time, error) {
	today := Day(now)

	switch a := strings.ToLower(strings.TrimSpace(arg)); a {
	case "":
		days := untilFriday(now.Weekday())
		if days == 0 && now.Hour() >= Cutoff {
			days = 7
		}
		return today.AddDate(0, 0, days), nil
	case "today", "now":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "friday", "fri":
		days := untilFriday(now.Weekday())
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), nil
	default:
		t, err := time.ParseInLocation(time.DateOnly, a, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrBadDate, arg)
		}
		return t, nil
	}
}

func untilFriday(wd time.Weekday) int {
	return (int(time.Friday) - int(wd) + 7) % 7
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date, each read
// in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseTimestamp parses an event timestamp. The wall clock fields are kept as
// written, so a trailing Z or offset never shifts the date.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Happening is a venue and the event that puts it on the schedule.
type Happening struct {
	Venue venue.Venue
	Event venue.Event
}

// On returns one Happening per venue with an event starting on day, using the
// first matching event. Venues keep their input order. Events whose start
// can't be parsed are skipped.
func On(venues []venue.Venue, day time.Time) []Happening {
	var happening []Happening
	for _, v := range venues {
		for _, e := range v.Events {
			start, err := ParseTimestamp(e.Start)
			if err != nil {
				log.Debugf("skipping event for %s: %v", v.Name, err)
				continue
			}
			if SameDay(start, day) {
				happening = append(happening, Happening{Venue: v, Event: e})
				break
			}
		}
	}
	return happening
}
