// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// EarthRadiusMiles is the mean radius used for all distance math.
const EarthRadiusMiles = 3959.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (p Point) String() string {
	return fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lon)
}

// Distance returns the haversine distance in miles between two points given
// in degrees. s2's LatLng.Distance is the haversine central angle, so scaling
// it by the radius gives 2R·asin(√a).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusMiles
}

// Between is Distance for two Points.
func Between(a, b Point) float64 {
	return Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}
