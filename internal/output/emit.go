// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/fishfry/internal/attrs"
	"github.com/staranto/fishfry/internal/config"
	"github.com/staranto/fishfry/internal/filters"
	"github.com/staranto/fishfry/internal/venue"
)

// Formats accepted by Emit.
var Formats = []string{"text", "table", "json", "yaml"}

// Entry is a venue as emitted by search and list. Miles is nil for list.
type Entry struct {
	venue.Venue `yaml:",inline"`
	Miles       *float64 `json:"distance_miles,omitempty" yaml:"distance_miles,omitempty"`
}

// FromRanked converts search results into entries.
func FromRanked(ranked []filters.Ranked) []Entry {
	entries := make([]Entry, 0, len(ranked))
	for _, r := range ranked {
		miles := r.Miles
		entries = append(entries, Entry{Venue: r.Venue, Miles: &miles})
	}
	return entries
}

// FromVenues converts an unranked venue list into entries.
func FromVenues(venues []venue.Venue) []Entry {
	entries := make([]Entry, 0, len(venues))
	for _, v := range venues {
		entries = append(entries, Entry{Venue: v})
	}
	return entries
}

// UseColor reports whether styled output should be written to w. Color is
// only used when requested and w is a terminal.
func UseColor(requested bool, w io.Writer) bool {
	if !requested {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Emit writes entries to w in the requested format. Unknown formats fall back
// to text.
func Emit(w io.Writer, format string, entries []Entry, f Formatter) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		if entries == nil {
			entries = []Entry{}
		}
		jsonOutput, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case "table":
		return TableWriter(entries, f, w)
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\n\n", f.Summary(e.Venue, e.Miles)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Columns returns the default table columns for entries with extras, an
// --attrs style spec, merged in. The distance column is a default only when
// some entry carries a distance.
func Columns(entries []Entry, extras string) (attrs.AttrList, error) {
	defaults := []string{"name", "type"}
	for _, e := range entries {
		if e.Miles != nil {
			defaults = append(defaults, "distance_miles:MILES")
			break
		}
	}
	defaults = append(defaults, "address")

	return attrs.Build(extras, defaults...)
}

// TableWriter renders entries as a borderless table with one column per
// included attr in f's column list.
func TableWriter(entries []Entry, f Formatter, w io.Writer) error {
	if len(entries) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Bold(true).Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if f.color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	columns := f.columns
	if len(columns) == 0 {
		var err error
		if columns, err = Columns(entries, ""); err != nil {
			return err
		}
	}
	columns = columns.Included()
	log.Debugf("columns: %s", columns.String())
	if len(columns) == 0 {
		return nil
	}

	var rows [][]string
	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
		doc := gjson.ParseBytes(raw)

		row := make([]string, 0, len(columns))
		for i := range columns {
			row = append(row, columns[i].Value(doc))
		}
		rows = append(rows, row)
	}

	pad, _ := config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers(columns.Titles()...).
		BorderHeader(false).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for styled output.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
