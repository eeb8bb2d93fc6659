// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/cacheutil"
	"github.com/staranto/fishfry/internal/meta"
	"github.com/staranto/fishfry/internal/venue"
)

func ptr[T any](v T) *T { return &v }

type stubSource struct {
	venues []venue.Venue
	err    error
	calls  int
}

func (s *stubSource) Fetch(context.Context) ([]venue.Venue, error) {
	s.calls++
	return s.venues, s.err
}

func fixtureVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID: "1", Name: "St. Al's", Type: "Church", Address: "1 Church St",
			Phone:             ptr("412-555-0100"),
			HomemadePierogies: ptr(true),
			Lat:               ptr(40.45), Lon: ptr(-79.99),
			Events: []venue.Event{
				{Start: "2025-03-07T16:00:00", End: "2025-03-07T19:00:00"},
			},
			Publish: true,
		},
		{
			ID: "2", Name: "Holy Cross", Type: "Church", Address: "2 Cross Rd",
			HomemadePierogies: ptr(false),
			Lat:               ptr(40.50), Lon: ptr(-80.00),
			Events:  []venue.Event{{Start: "2025-03-14T16:00:00"}},
			Publish: true,
		},
		{
			ID: "3", Name: "VFD Station 9", Type: "Fire Department",
			HomemadePierogies: ptr(true),
			Publish:           true,
		},
	}
}

// geocoder is a fake Nominatim recording the queries it receives.
type geocoder struct {
	mu      sync.Mutex
	queries []string
	body    string
}

func (g *geocoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.queries = append(g.queries, r.URL.Query().Get("q"))
	g.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(g.body))
}

type harness struct {
	meta   meta.Meta
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	source *stubSource
	geo    *geocoder
}

// 2025-03-05 is a Wednesday.
var wednesday = time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()

	geo := &geocoder{body: `[{"lat":"40.4406","lon":"-79.9959","display_name":"Pittsburgh"}]`}
	srv := httptest.NewServer(geo)
	t.Cleanup(srv.Close)

	h := &harness{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		source: &stubSource{venues: fixtureVenues()},
		geo:    geo,
	}
	h.meta = meta.Meta{
		Args:           []string{"fishfry"},
		Context:        context.Background(),
		Clock:          clockwork.NewFakeClockAt(now),
		Stdout:         h.stdout,
		Stderr:         h.stderr,
		CacheDir:       t.TempDir(),
		MaxAge:         cacheutil.DefaultMaxAge,
		GeocodeURL:     srv.URL,
		GeocodeTimeout: 5 * time.Second,
		Source:         h.source,
	}
	return h
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	return NewApp(h.meta).Run(context.Background(), append([]string{"fishfry"}, args...))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func TestSearch(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("search", "--pierogies", "15217")
	require.NoError(t, err)

	out := h.stdout.String()
	assert.Contains(t, out, "Found 1 fish fries. Showing nearest 1:\n\n")
	assert.Contains(t, out, "🐟 St. Al's\n   Type: Church\n   Distance: ")
	assert.NotContains(t, out, "Holy Cross")
	assert.NotContains(t, out, "VFD Station 9", "venues without coordinates are not ranked")

	assert.Equal(t, []string{"15217, PA"}, h.geo.queries)
	assert.Contains(t, h.stderr.String(), "Fetching fresh fish fry data...\n")
	assert.Contains(t, h.stderr.String(), "Loaded 3 fish fry venues.\n")
	assert.Contains(t, h.stderr.String(), "Searching near: 15217 (40.4406, -79.9959)")
}

func TestSearch_RankAndLimit(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("search", "-n", "1", "Squirrel", "Hill"))
	out := h.stdout.String()
	assert.Contains(t, out, "Found 2 fish fries. Showing nearest 1:")
	assert.Contains(t, out, "St. Al's")
	assert.NotContains(t, out, "Holy Cross")
	assert.Equal(t, []string{"Squirrel Hill, Pittsburgh, PA"}, h.geo.queries)
}

func TestSearch_UsesFreshCache(t *testing.T) {
	h := newHarness(t, time.Now())

	require.NoError(t, h.run("search", "15217"))
	require.NoError(t, h.run("search", "15217"))
	assert.Equal(t, 1, h.source.calls)
	assert.NotContains(t, h.stderr.String(), "Fetching")
}

func TestSearch_NoMatches(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("search", "--alcohol", "15217"))
	assert.Equal(t, "No fish fries found matching your criteria.\n", h.stdout.String())
}

func TestSearch_JSON(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("search", "--output", "json", "15217"))

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "St. Al's", got[0]["name"])
	assert.Contains(t, got[0], "distance_miles")
}

func TestSearch_BadOutput(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("search", "--output", "xml", "15217")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestSearch_GeocodeFails(t *testing.T) {
	h := newHarness(t, wednesday)
	h.geo.body = `[]`

	err := h.run("search", "Atlantis")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "Could not find location: Atlantis\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "Geocoding failed:")
}

func TestSearch_MissingLocation(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("search")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, h.stdout.String(), "Missing location.")
	assert.Equal(t, 0, h.source.calls)
}

func TestSearch_NoData(t *testing.T) {
	h := newHarness(t, wednesday)
	h.source.venues = nil
	h.source.err = errors.New("HTTP Error 503: Service Unavailable")

	err := h.run("search", "15217")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "No fish fry data available.\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "Error fetching data: HTTP Error 503: Service Unavailable\n")
	assert.Empty(t, h.geo.queries)
}

func TestSearch_StaleFallback(t *testing.T) {
	h := newHarness(t, time.Now())

	store := h.meta.Store()
	require.NoError(t, store.Save(fixtureVenues()[:1]))
	old := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(store.Path(), old, old))

	h.source.err = errors.New("offline")
	require.NoError(t, h.run("search", "15217"))

	assert.Contains(t, h.stderr.String(), "Using cached data.\n")
	assert.Contains(t, h.stdout.String(), "Found 1 fish fries.")
}

func TestList(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("list"))
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "Found 3 fish fries:\n\n"))

	holy := strings.Index(out, "Holy Cross")
	al := strings.Index(out, "St. Al's")
	vfd := strings.Index(out, "VFD Station 9")
	assert.True(t, holy < al && al < vfd, "sorted by name")
	assert.NotContains(t, out, "Distance:")
}

func TestList_Filtered(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("list", "--pierogies"))
	out := h.stdout.String()
	assert.Contains(t, out, "Found 2 fish fries:")
	assert.NotContains(t, out, "Holy Cross")
}

func TestList_YAML(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("list", "-o", "yaml"))
	out := h.stdout.String()
	assert.Contains(t, out, "name: Holy Cross")
	assert.NotContains(t, out, "distance_miles")
}

func TestList_TableAttrs(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("list", "-o", "table", "--attrs", "!type,phone:Phone,name::u"))
	out := h.stdout.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Phone")
	assert.Contains(t, out, "412-555-0100")
	assert.Contains(t, out, "HOLY CROSS")
	assert.NotContains(t, out, "TYPE")
	assert.NotContains(t, out, "Fire Department")
}

func TestSearch_TableDefaultColumns(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("search", "-o", "table", "15217"))
	out := h.stdout.String()
	for _, title := range []string{"NAME", "TYPE", "MILES", "ADDRESS"} {
		assert.Contains(t, out, title)
	}
	assert.NotContains(t, out, "VFD Station 9", "no coordinates")
}

func TestList_BadAttrs(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("list", "-o", "table", "--attrs", "name,,type")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attribute key is empty")
}

func TestDetails(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("details", "al"))
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "🐟 St. Al's\n"))
	assert.NotContains(t, out, "Multiple venues")
	assert.Contains(t, out, "📅 Schedule:\n      Fri Mar 07: 4:00 PM - 7:00 PM")
}

func TestDetails_Multiple(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("details", "St"))
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "Multiple venues match 'St':\n\n"))
	assert.Contains(t, out, "St. Al's")
	assert.Contains(t, out, "VFD Station 9")
}

func TestDetails_Suggestions(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("details", "cross church")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t,
		"No venue found matching: cross church\n\nDid you mean:\n  - Holy Cross\n",
		h.stdout.String())
}

func TestDetails_NothingClose(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("details", "zzz")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "No venue found matching: zzz\n", h.stdout.String())
}

func TestSchedule(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("schedule", "friday"))
	assert.Equal(t,
		"Fish fries on Friday, March 07, 2025:\n\n"+
			"Found 1 fish fries:\n\n"+
			"🐟 St. Al's (Church)\n"+
			"   Time: 4:00 PM - 7:00 PM\n"+
			"   Address: 1 Church St\n"+
			"   Phone: 412-555-0100\n\n",
		h.stdout.String())
}

func TestSchedule_DefaultIsNextFriday(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("schedule"))
	assert.Contains(t, h.stdout.String(), "Fish fries on Friday, March 07, 2025:")
}

func TestSchedule_MissingEnd(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("schedule", "2025-03-14"))
	out := h.stdout.String()
	assert.Contains(t, out, "🐟 Holy Cross (Church)\n   Time: Check venue\n")
}

func TestSchedule_Nothing(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("schedule", "tomorrow"))
	assert.Equal(t,
		"Fish fries on Thursday, March 06, 2025:\n\n"+
			"No fish fries scheduled for this date in our data.\n"+
			"Note: Event data may be from a previous year. Check venue websites for current schedules.\n",
		h.stdout.String())
}

func TestSchedule_BadDate(t *testing.T) {
	h := newHarness(t, wednesday)

	err := h.run("schedule", "someday")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t,
		"Could not parse date: someday\nUse: today, tomorrow, friday, or YYYY-MM-DD\n",
		h.stdout.String())
}

func TestUpdate(t *testing.T) {
	h := newHarness(t, time.Now())

	// Seed a snapshot missing venue 3 and with a different Holy Cross.
	previous := fixtureVenues()[:2]
	previous[1].Address = "Old Address"
	require.NoError(t, h.meta.Store().Save(previous))

	require.NoError(t, h.run("update"))
	assert.Equal(t, 1, h.source.calls, "update always fetches")

	out := h.stdout.String()
	assert.Contains(t, out, "Updated cache with 3 venues.\n")
	assert.Contains(t, out, "1 added, 0 removed, 1 changed.")

	cached, err := h.meta.Store().Load()
	require.NoError(t, err)
	assert.Len(t, cached, 3)
}

func TestUpdate_NoPrevious(t *testing.T) {
	h := newHarness(t, time.Now())

	require.NoError(t, h.run("update"))
	assert.Equal(t, "Updated cache with 3 venues.\n", h.stdout.String())
}

func TestUpdate_Unchanged(t *testing.T) {
	h := newHarness(t, time.Now())
	require.NoError(t, h.meta.Store().Save(fixtureVenues()))

	require.NoError(t, h.run("update"))
	assert.Contains(t, h.stdout.String(), "No changes since ")
}

func TestUpdate_FetchFails(t *testing.T) {
	h := newHarness(t, time.Now())
	h.source.venues = nil
	h.source.err = errors.New("offline")

	require.NoError(t, h.run("update"))
	assert.Equal(t, "Updated cache with 0 venues.\n", h.stdout.String())
}

func TestStatus(t *testing.T) {
	h := newHarness(t, time.Now())
	store := h.meta.Store()

	require.NoError(t, h.run("status"))
	assert.Contains(t, h.stdout.String(), "Cache file: "+store.Path())
	assert.Contains(t, h.stdout.String(), "No cached data.")

	require.NoError(t, store.Save(fixtureVenues()))
	require.NoError(t, h.run("status"))
	assert.Contains(t, h.stdout.String(), "Venues: 3\n")
	assert.Contains(t, h.stdout.String(), "(fresh, max age 168h0m0s)")
	assert.Equal(t, 0, h.source.calls, "status never fetches")

	old := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(store.Path(), old, old))
	require.NoError(t, h.run("status"))
	assert.Contains(t, h.stdout.String(), "Last updated: 1 week ago (stale")

	require.NoError(t, h.run("status", "--purge"))
	assert.Equal(t, "Removed "+store.Path()+"\n", h.stdout.String())
	assert.False(t, store.Exists())
}

func TestCompletion(t *testing.T) {
	h := newHarness(t, wednesday)

	require.NoError(t, h.run("completion", "bash"))
	assert.Contains(t, h.stdout.String(), "complete -F _fishfry fishfry")

	require.NoError(t, h.run("completion", "zsh"))
	assert.Contains(t, h.stdout.String(), "#compdef fishfry")

	err := h.run("completion", "fish")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, h.stdout.String(), "usage: fishfry completion")
}
