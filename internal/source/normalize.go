// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/fishfry/internal/venue"
)

// ErrMalformed is returned when the document is not a GeoJSON feature
// collection at all. Individual bad fields never produce it.
var ErrMalformed = errors.New("malformed dataset")

// Normalize converts a GeoJSON feature collection into venues. Missing or
// mistyped fields default per venue; only a broken top level fails.
func Normalize(doc []byte) ([]venue.Venue, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.Join(ErrMalformed, errors.New("invalid JSON"))
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, errors.Join(ErrMalformed, errors.New("top level is not an object"))
	}

	features := root.Get("features")
	if !features.IsArray() {
		return nil, errors.Join(ErrMalformed, errors.New("no features array"))
	}

	venues := make([]venue.Venue, 0, len(features.Array()))
	for _, feature := range features.Array() {
		venues = append(venues, normalizeFeature(feature))
	}

	log.Debugf("normalized %d features", len(venues))
	return venues, nil
}

func normalizeFeature(feature gjson.Result) venue.Venue {
	props := feature.Get("properties")

	v := venue.Venue{
		ID:      idField(feature.Get("id")),
		Name:    defaulted(props.Get("venue_name")),
		Type:    defaulted(props.Get("venue_type")),
		Address: props.Get("venue_address").String(),
		Phone:   strField(props.Get("phone")),
		Email:   strField(props.Get("email")),
		Website: strField(props.Get("website")),
		Notes:   strField(props.Get("venue_notes")),
		Events:  events(props.Get("events")),

		MenuText: strField(props.Get("menu.text")),
		MenuURL:  strField(props.Get("menu.url")),

		HomemadePierogies: boolField(props.Get("homemade_pierogies")),
		Handicap:          boolField(props.Get("handicap")),
		Alcohol:           boolField(props.Get("alcohol")),
		TakeOut:           boolField(props.Get("take_out")),
		Lunch:             boolField(props.Get("lunch")),

		Etc:     strField(props.Get("etc")),
		Publish: true,
	}

	if p := props.Get("publish"); p.Exists() {
		v.Publish = p.Bool()
	}

	// Coordinates are [lon, lat]; keep them only as a complete numeric pair.
	coords := feature.Get("geometry.coordinates").Array()
	if len(coords) >= 2 && coords[0].Type == gjson.Number && coords[1].Type == gjson.Number {
		lon, lat := coords[0].Num, coords[1].Num
		v.Lon, v.Lat = &lon, &lat
	}

	return v
}

func idField(r gjson.Result) string {
	if !r.Exists() || r.Type == gjson.Null {
		return ""
	}
	return r.String()
}

func defaulted(r gjson.Result) string {
	if s := strings.TrimSpace(r.String()); s != "" && r.Type != gjson.Null {
		return r.String()
	}
	return venue.Unknown
}

func strField(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

func boolField(r gjson.Result) *bool {
	var b bool
	switch r.Type {
	case gjson.True:
		b = true
	case gjson.False:
		b = false
	default:
		return nil
	}
	return &b
}

func events(r gjson.Result) []venue.Event {
	out := []venue.Event{}
	if !r.IsArray() {
		return out
	}
	for _, e := range r.Array() {
		if !e.IsObject() {
			continue
		}
		out = append(out, venue.Event{
			Start: e.Get("dt_start").String(),
			End:   e.Get("dt_end").String(),
		})
	}
	return out
}
