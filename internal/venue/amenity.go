// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package venue

// Amenity is one of the boolean features a venue may advertise.
type Amenity int

const (
	Pierogies Amenity = iota
	Accessible
	Alcohol
	Takeout
	Lunch
)

// AllAmenities is the fixed display order.
var AllAmenities = []Amenity{Pierogies, Accessible, Alcohol, Takeout, Lunch}

var amenityLabels = map[Amenity]string{
	Pierogies:  "🥟 Homemade Pierogies",
	Accessible: "♿ Wheelchair Accessible",
	Alcohol:    "🍺 Alcohol",
	Takeout:    "📦 Takeout",
	Lunch:      "☀️ Lunch",
}

// Label is the emoji-prefixed text shown in a feature list.
func (a Amenity) Label() string {
	return amenityLabels[a]
}
