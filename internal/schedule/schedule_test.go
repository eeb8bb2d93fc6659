// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package schedule

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/fishfry/internal/venue"
)

// 2025-03-05 is a Wednesday, 2025-03-07 a Friday.
func clockAt(day, hour int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, time.March, day, hour, 30, 0, 0, time.Local))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		arg   string
		clock clockwork.Clock
		want  time.Time
	}{
		{name: "friday on wednesday", arg: "friday", clock: clockAt(5, 10), want: date(2025, time.March, 7)},
		{name: "fri on wednesday", arg: "FRI", clock: clockAt(5, 10), want: date(2025, time.March, 7)},
		{name: "friday on friday", arg: "friday", clock: clockAt(7, 9), want: date(2025, time.March, 14)},
		{name: "friday on saturday", arg: "Friday", clock: clockAt(8, 9), want: date(2025, time.March, 14)},
		{name: "today", arg: "today", clock: clockAt(5, 23), want: date(2025, time.March, 5)},
		{name: "now", arg: "Now", clock: clockAt(5, 1), want: date(2025, time.March, 5)},
		{name: "tomorrow", arg: "tomorrow", clock: clockAt(5, 10), want: date(2025, time.March, 6)},
		{name: "tomorrow across month", arg: "tomorrow", clock: clockAt(31, 10), want: date(2025, time.April, 1)},
		{name: "explicit", arg: "2025-04-11", clock: clockAt(5, 10), want: date(2025, time.April, 11)},
		{name: "default on wednesday", arg: "", clock: clockAt(5, 10), want: date(2025, time.March, 7)},
		{name: "default on friday afternoon", arg: "", clock: clockAt(7, 17), want: date(2025, time.March, 7)},
		{name: "default on friday evening", arg: "", clock: clockAt(7, 20), want: date(2025, time.March, 14)},
		{name: "default on saturday", arg: "", clock: clockAt(8, 10), want: date(2025, time.March, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.arg, tt.clock.Now())
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestResolve_BadDate(t *testing.T) {
	for _, arg := range []string{"someday", "2025-13-01", "03/07/2025", "next friday"} {
		t.Run(arg, func(t *testing.T) {
			_, err := Resolve(arg, clockAt(5, 10).Now())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadDate)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		min     int
		wantErr bool
	}{
		{in: "2025-03-07T16:30:00Z", hour: 16, min: 30},
		{in: "2025-03-07T16:30:00", hour: 16, min: 30},
		{in: "2025-03-07T16:30:00-05:00", hour: 16, min: 30},
		{in: "2025-03-07T16:30:00.123456", hour: 16, min: 30},
		{in: "2025-03-07 16:30:00", hour: 16, min: 30},
		{in: "2025-03-07T16:30", hour: 16, min: 30},
		{in: "2025-03-07", hour: 0, min: 0},
		{in: "", wantErr: true},
		{in: "Friday at four", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2025, got.Year())
			assert.Equal(t, time.March, got.Month())
			assert.Equal(t, 7, got.Day())
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.min, got.Minute())
		})
	}
}

func TestOn(t *testing.T) {
	venues := []venue.Venue{
		{Name: "Twice", Events: []venue.Event{
			{Start: "2025-03-07T11:00:00", End: "2025-03-07T13:00:00"},
			{Start: "2025-03-07T16:00:00", End: "2025-03-07T19:00:00"},
		}},
		{Name: "Other day", Events: []venue.Event{{Start: "2025-03-14T16:00:00"}}},
		{Name: "Garbage first", Events: []venue.Event{
			{Start: "soon"},
			{Start: "2025-03-07T17:00:00Z"},
		}},
		{Name: "No events"},
	}

	got := On(venues, date(2025, time.March, 7))
	require.Len(t, got, 2)
	assert.Equal(t, "Twice", got[0].Venue.Name)
	assert.Equal(t, "2025-03-07T11:00:00", got[0].Event.Start)
	assert.Equal(t, "Garbage first", got[1].Venue.Name)

	assert.Empty(t, On(venues, date(2025, time.March, 8)))
}
