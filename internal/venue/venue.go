// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package venue

import (
	"github.com/staranto/fishfry/internal/geo"
)

// Unknown is substituted for a missing name or type.
const Unknown = "Unknown"

// Event is one scheduled fish fry at a venue. Timestamps are kept exactly as
// the source wrote them.
type Event struct {
	Start string `json:"dt_start" yaml:"dt_start"`
	End   string `json:"dt_end,omitempty" yaml:"dt_end,omitempty"`
}

// Venue is a single fish fry location. Name and Type are always populated.
// Lat and Lon are either both set or both nil.
type Venue struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Address string  `json:"address" yaml:"address"`
	Phone   *string `json:"phone" yaml:"phone,omitempty"`
	Email   *string `json:"email" yaml:"email,omitempty"`
	Website *string `json:"website" yaml:"website,omitempty"`
	Notes   *string `json:"notes" yaml:"notes,omitempty"`
	Events  []Event `json:"events" yaml:"events,omitempty"`

	MenuText *string `json:"menu_text" yaml:"menu_text,omitempty"`
	MenuURL  *string `json:"menu_url" yaml:"menu_url,omitempty"`

	HomemadePierogies *bool `json:"homemade_pierogies" yaml:"homemade_pierogies,omitempty"`
	Handicap          *bool `json:"handicap" yaml:"handicap,omitempty"`
	Alcohol           *bool `json:"alcohol" yaml:"alcohol,omitempty"`
	TakeOut           *bool `json:"take_out" yaml:"take_out,omitempty"`
	Lunch             *bool `json:"lunch" yaml:"lunch,omitempty"`

	Etc *string  `json:"etc" yaml:"etc,omitempty"`
	Lon *float64 `json:"lon" yaml:"lon,omitempty"`
	Lat *float64 `json:"lat" yaml:"lat,omitempty"`

	// Publish is carried from the source but never used to hide a venue.
	Publish bool `json:"publish" yaml:"publish"`
}

// Location returns the venue's coordinates, or false when the source had no
// geometry for it.
func (v Venue) Location() (geo.Point, bool) {
	if v.Lat == nil || v.Lon == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *v.Lat, Lon: *v.Lon}, true
}

// Has reports whether the venue is flagged exactly true for a.
func (v Venue) Has(a Amenity) bool {
	var p *bool
	switch a {
	case Pierogies:
		p = v.HomemadePierogies
	case Accessible:
		p = v.Handicap
	case Alcohol:
		p = v.Alcohol
	case Takeout:
		p = v.TakeOut
	case Lunch:
		p = v.Lunch
	}
	return p != nil && *p
}

// Amenities lists the amenities flagged true, in display order.
func (v Venue) Amenities() []Amenity {
	var out []Amenity
	for _, a := range AllAmenities {
		if v.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Str dereferences an optional string, "" when nil.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
