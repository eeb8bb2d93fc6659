// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/fishfry/internal/geo"
	"github.com/staranto/fishfry/internal/venue"
)

// DefaultLimit is how many ranked venues search shows unless told otherwise.
const DefaultLimit = 15

// Flags are the amenity filters a user can switch on. Zero value filters
// nothing.
type Flags struct {
	Pierogies  bool
	Accessible bool
	Alcohol    bool
	Takeout    bool
}

// Required lists the amenities the active flags demand.
func (f Flags) Required() []venue.Amenity {
	var req []venue.Amenity
	if f.Pierogies {
		req = append(req, venue.Pierogies)
	}
	if f.Accessible {
		req = append(req, venue.Accessible)
	}
	if f.Alcohol {
		req = append(req, venue.Alcohol)
	}
	if f.Takeout {
		req = append(req, venue.Takeout)
	}
	return req
}

// Filter returns the venues flagged exactly true for every active flag, in
// input order. Unknown (nil) amenities never pass an active flag.
func Filter(venues []venue.Venue, flags Flags) []venue.Venue {
	required := flags.Required()

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filtered []venue.Venue
	for _, v := range venues {
		if hasAll(v, required) {
			filtered = append(filtered, v)
		}
	}

	log.Debugf("filter %v: %d of %d venues", required, len(filtered), len(venues))
	return filtered
}

func hasAll(v venue.Venue, required []venue.Amenity) bool {
	for _, a := range required {
		if !v.Has(a) {
			return false
		}
	}
	return true
}

// Ranked pairs a venue with its distance from the search origin.
type Ranked struct {
	Venue venue.Venue `json:"venue" yaml:"venue"`
	Miles float64     `json:"distance_miles" yaml:"distance_miles"`
}

// Rank drops venues without coordinates and sorts the rest by distance from
// origin. Equal distances keep their input order.
func Rank(venues []venue.Venue, origin geo.Point) []Ranked {
	ranked := make([]Ranked, 0, len(venues))
	for _, v := range venues {
		loc, ok := v.Location()
		if !ok {
			continue
		}
		ranked = append(ranked, Ranked{Venue: v, Miles: geo.Between(origin, loc)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Miles < ranked[j].Miles
	})
	return ranked
}

// Limit returns at most n leading entries of ranked. It never reorders, so the
// result is always a prefix. A non-positive n means DefaultLimit.
func Limit(ranked []Ranked, n int) []Ranked {
	if n <= 0 {
		n = DefaultLimit
	}
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}

// ByName returns a copy of venues stably sorted by name.
func ByName(venues []venue.Venue) []venue.Venue {
	sorted := make([]venue.Venue, len(venues))
	copy(sorted, venues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// MatchName returns the venues whose name contains query, ignoring case.
func MatchName(venues []venue.Venue, query string) []venue.Venue {
	q := strings.ToLower(query)

	var matches []venue.Venue
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), q) {
			matches = append(matches, v)
		}
	}
	return matches
}

// Suggest returns up to max venue names containing any whitespace-delimited
// word of query, ignoring case. It is the fallback when MatchName finds
// nothing.
func Suggest(venues []venue.Venue, query string, max int) []string {
	words := strings.Fields(strings.ToLower(query))

	var names []string
	for _, v := range venues {
		if len(names) >= max {
			break
		}
		name := strings.ToLower(v.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				names = append(names, v.Name)
				break
			}
		}
	}
	return names
}
