// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/fishfry/internal/geo"
	"github.com/staranto/fishfry/internal/venue"
)

func ptr[T any](v T) *T { return &v }

var origin = geo.Point{Lat: 40.4406, Lon: -79.9959}

func at(name string, lat, lon float64) venue.Venue {
	return venue.Venue{Name: name, Type: "Church", Lat: ptr(lat), Lon: ptr(lon), Publish: true}
}

func fixtureVenues() []venue.Venue {
	return []venue.Venue{
		{Name: "All Four", HomemadePierogies: ptr(true), Handicap: ptr(true), Alcohol: ptr(true), TakeOut: ptr(true)},
		{Name: "Pierogies Only", HomemadePierogies: ptr(true), Handicap: ptr(false)},
		{Name: "Accessible Takeout", Handicap: ptr(true), TakeOut: ptr(true)},
		{Name: "Unknowns"},
		{Name: "Bar", Alcohol: ptr(true), HomemadePierogies: ptr(false)},
	}
}

func names(vs []venue.Venue) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}

func TestFilter_PierogiesScenario(t *testing.T) {
	in := []venue.Venue{
		{Name: "yes", HomemadePierogies: ptr(true)},
		{Name: "no", HomemadePierogies: ptr(false)},
	}
	got := Filter(in, Flags{Pierogies: true})
	require.Len(t, got, 1)
	assert.Equal(t, "yes", got[0].Name)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  []string
	}{
		{
			name:  "no flags keeps everything",
			flags: Flags{},
			want:  []string{"All Four", "Pierogies Only", "Accessible Takeout", "Unknowns", "Bar"},
		},
		{
			name:  "pierogies",
			flags: Flags{Pierogies: true},
			want:  []string{"All Four", "Pierogies Only"},
		},
		{
			name:  "accessible",
			flags: Flags{Accessible: true},
			want:  []string{"All Four", "Accessible Takeout"},
		},
		{
			name:  "alcohol",
			flags: Flags{Alcohol: true},
			want:  []string{"All Four", "Bar"},
		},
		{
			name:  "accessible and takeout",
			flags: Flags{Accessible: true, Takeout: true},
			want:  []string{"All Four", "Accessible Takeout"},
		},
		{
			name:  "everything",
			flags: Flags{Pierogies: true, Accessible: true, Alcohol: true, Takeout: true},
			want:  []string{"All Four"},
		},
		{
			name:  "pierogies and alcohol",
			flags: Flags{Pierogies: true, Alcohol: true},
			want:  []string{"All Four"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(fixtureVenues(), tt.flags)))
		})
	}
}

func TestFilter_Monotonic(t *testing.T) {
	all := []Flags{
		{},
		{Pierogies: true},
		{Pierogies: true, Accessible: true},
		{Pierogies: true, Accessible: true, Alcohol: true},
		{Pierogies: true, Accessible: true, Alcohol: true, Takeout: true},
	}
	prev := len(fixtureVenues())
	for _, f := range all {
		n := len(Filter(fixtureVenues(), f))
		assert.LessOrEqual(t, n, prev, "flags %+v", f)
		prev = n
	}
}

func TestFlags_Required(t *testing.T) {
	assert.Empty(t, Flags{}.Required())
	assert.Equal(t,
		[]venue.Amenity{venue.Pierogies, venue.Takeout},
		Flags{Pierogies: true, Takeout: true}.Required())
}

func TestRank(t *testing.T) {
	in := []venue.Venue{
		at("far", 40.60, -80.20),
		{Name: "no coords"},
		{Name: "half coords", Lat: ptr(40.44)},
		at("here", 40.4406, -79.9959),
		at("near", 40.45, -79.99),
	}

	got := Rank(in, origin)
	require.Len(t, got, 3)
	assert.Equal(t, "here", got[0].Venue.Name)
	assert.Equal(t, 0.0, got[0].Miles)
	assert.Equal(t, "near", got[1].Venue.Name)
	assert.Equal(t, "far", got[2].Venue.Name)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Miles, got[i].Miles)
	}
}

func TestRank_StableTies(t *testing.T) {
	in := []venue.Venue{
		at("first", 40.5, -80.0),
		at("second", 40.5, -80.0),
		at("closer", 40.45, -80.0),
		at("third", 40.5, -80.0),
	}

	got := Rank(in, origin)
	var order []string
	for _, r := range got {
		order = append(order, r.Venue.Name)
	}
	assert.Equal(t, []string{"closer", "first", "second", "third"}, order)
}

func TestLimit(t *testing.T) {
	var in []venue.Venue
	for i := 0; i < 20; i++ {
		in = append(in, at("v", 40.44+float64(i)*0.01, -79.99))
	}
	ranked := Rank(in, origin)

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "default", n: 0, want: DefaultLimit},
		{name: "negative", n: -3, want: DefaultLimit},
		{name: "five", n: 5, want: 5},
		{name: "more than available", n: 50, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Limit(ranked, tt.n)
			assert.Len(t, got, tt.want)
			assert.Equal(t, ranked[:len(got)], got, "limit is a prefix")
		})
	}
}

func TestByName(t *testing.T) {
	in := []venue.Venue{{Name: "St. Paul"}, {Name: "Holy Cross"}, {Name: "St. Al's"}}
	got := ByName(in)
	assert.Equal(t, []string{"Holy Cross", "St. Al's", "St. Paul"}, names(got))
	assert.Equal(t, "St. Paul", in[0].Name, "input untouched")
}

func TestMatchName(t *testing.T) {
	in := []venue.Venue{{Name: "St. Al's"}, {Name: "Holy Cross"}, {Name: "ALLISON PARK VFD"}}

	assert.Equal(t, []string{"St. Al's", "ALLISON PARK VFD"}, names(MatchName(in, "al")))
	assert.Equal(t, []string{"Holy Cross"}, names(MatchName(in, "HOLY")))
	assert.Empty(t, MatchName(in, "zzz"))
}

func TestSuggest(t *testing.T) {
	in := []venue.Venue{
		{Name: "St. Paul Cathedral"},
		{Name: "Holy Cross"},
		{Name: "St. Bernard"},
		{Name: "Cross Roads VFD"},
	}

	assert.Equal(t, []string{"Holy Cross", "Cross Roads VFD"}, Suggest(in, "cross church", 5))
	assert.Equal(t, []string{"St. Paul Cathedral"}, Suggest(in, "st.", 1))
	assert.Empty(t, Suggest(in, "", 5))
}
