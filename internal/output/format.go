// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/staranto/fishfry/internal/attrs"
	"github.com/staranto/fishfry/internal/schedule"
	"github.com/staranto/fishfry/internal/venue"
)

// MaxScheduleEvents caps the events listed by Details.
const MaxScheduleEvents = 10

const (
	indent      = "   "
	eventIndent = "      "
	dateLayout  = "Mon Jan 02"
	clockLayout = "3:04 PM"
)

// Formatter renders venue cards. The zero value renders plain text.
type Formatter struct {
	color   bool
	name    lipgloss.Style
	columns attrs.AttrList
}

// NewFormatter returns a Formatter that styles venue names when color is
// true.
func NewFormatter(color bool) Formatter {
	if !color {
		return Formatter{}
	}
	title, _, _ := getColors("colors")
	return Formatter{
		color: true,
		name:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(title)),
	}
}

// WithColumns returns a copy of f whose table output shows columns instead of
// the default set.
func (f Formatter) WithColumns(columns attrs.AttrList) Formatter {
	f.columns = columns
	return f
}

func (f Formatter) styleName(name string) string {
	if !f.color {
		return name
	}
	return f.name.Render(name)
}

// Summary is the short card shown by search and list. distance is omitted
// when nil.
func (f Formatter) Summary(v venue.Venue, distance *float64) string {
	lines := []string{
		"🐟 " + f.styleName(v.Name),
		indent + "Type: " + v.Type,
	}

	if distance != nil {
		lines = append(lines, fmt.Sprintf("%sDistance: %.1f miles", indent, *distance))
	}
	if v.Address != "" {
		lines = append(lines, indent+"Address: "+v.Address)
	}

	if amenities := v.Amenities(); len(amenities) > 0 {
		labels := make([]string, 0, len(amenities))
		for _, a := range amenities {
			labels = append(labels, a.Label())
		}
		lines = append(lines, indent+"Features: "+strings.Join(labels, ", "))
	}

	if hours := venue.Str(v.Etc); hours != "" {
		lines = append(lines, indent+"Hours: "+hours)
	}
	if phone := venue.Str(v.Phone); phone != "" {
		lines = append(lines, indent+"Phone: "+phone)
	}
	if web := venue.Str(v.Website); web != "" {
		lines = append(lines, indent+"Web: "+web)
	}

	return strings.Join(lines, "\n")
}

// Details is the summary followed by menu, notes and up to
// MaxScheduleEvents events.
func (f Formatter) Details(v venue.Venue) string {
	lines := []string{f.Summary(v, nil)}

	if menu := venue.Str(v.MenuText); menu != "" {
		lines = append(lines, "\n"+indent+"📋 Menu: "+menu)
	}
	if menuURL := venue.Str(v.MenuURL); menuURL != "" {
		lines = append(lines, indent+"Menu URL: "+menuURL)
	}
	if notes := venue.Str(v.Notes); notes != "" {
		lines = append(lines, "\n"+indent+"📝 Notes: "+notes)
	}

	if len(v.Events) > 0 {
		lines = append(lines, "\n"+indent+"📅 Schedule:")
		events := v.Events
		if len(events) > MaxScheduleEvents {
			events = events[:MaxScheduleEvents]
		}
		for _, e := range events {
			if e.Start == "" {
				continue
			}
			lines = append(lines, eventIndent+eventLine(e))
		}
	}

	return strings.Join(lines, "\n")
}

// eventLine formats one schedule entry. An unparseable timestamp falls back
// to the raw start string.
func eventLine(e venue.Event) string {
	start, err := schedule.ParseTimestamp(e.Start)
	if err != nil {
		return e.Start
	}

	text := start.Format(dateLayout) + ": " + start.Format(clockLayout)
	if e.End == "" {
		return text
	}

	end, err := schedule.ParseTimestamp(e.End)
	if err != nil {
		return e.Start
	}
	return text + " - " + end.Format(clockLayout)
}

// ScheduleEntry is the card for one venue on the schedule view.
func (f Formatter) ScheduleEntry(v venue.Venue, e venue.Event) string {
	lines := []string{
		fmt.Sprintf("🐟 %s (%s)", f.styleName(v.Name), v.Type),
		indent + "Time: " + TimeWindow(e),
		indent + "Address: " + v.Address,
	}
	if phone := venue.Str(v.Phone); phone != "" {
		lines = append(lines, indent+"Phone: "+phone)
	}
	return strings.Join(lines, "\n")
}

// TimeWindow renders an event as "4:00 PM - 7:00 PM", or "Check venue" when
// either end is missing or unparseable.
func TimeWindow(e venue.Event) string {
	start, err := schedule.ParseTimestamp(e.Start)
	if err != nil {
		return "Check venue"
	}
	end, err := schedule.ParseTimestamp(e.End)
	if err != nil {
		return "Check venue"
	}
	return start.Format(clockLayout) + " - " + end.Format(clockLayout)
}
