// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"

	"github.com/staranto/fishfry/internal/venue"
)

// Summary lists the venue keys that appeared, disappeared or changed between
// two snapshots. Each slice is sorted.
type Summary struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether the snapshots were equivalent.
func (s Summary) Empty() bool {
	return len(s.Added)+len(s.Removed)+len(s.Changed) == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d removed, %d changed",
		len(s.Added), len(s.Removed), len(s.Changed))
}

// Key identifies a venue across snapshots. The source id is used when
// present, otherwise the name.
func Key(v venue.Venue) string {
	if v.ID != "" {
		return v.ID
	}
	return "name:" + v.Name
}

// Compare diffs prev against next keyed by venue. Duplicate keys keep the last
// venue seen.
func Compare(prev, next []venue.Venue) (Summary, error) {
	left, err := index(prev)
	if err != nil {
		return Summary{}, err
	}
	right, err := index(next)
	if err != nil {
		return Summary{}, err
	}

	diff := gojsondiff.New().CompareObjects(left, right)

	var sum Summary
	for _, delta := range diff.Deltas() {
		switch d := delta.(type) {
		case *gojsondiff.Added:
			sum.Added = append(sum.Added, d.PostPosition().String())
		case *gojsondiff.Deleted:
			sum.Removed = append(sum.Removed, d.PrePosition().String())
		case *gojsondiff.Object:
			sum.Changed = append(sum.Changed, d.PostPosition().String())
		case *gojsondiff.Modified:
			sum.Changed = append(sum.Changed, d.PostPosition().String())
		default:
			log.Debugf("differ: ignoring delta %T", delta)
		}
	}

	sort.Strings(sum.Added)
	sort.Strings(sum.Removed)
	sort.Strings(sum.Changed)

	log.Debugf("differ: %s", sum)
	return sum, nil
}

// index converts venues into the generic JSON shape gojsondiff walks.
func index(venues []venue.Venue) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(venues))
	for _, v := range venues {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode venue %q: %w", v.Name, err)
		}

		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to decode venue %q: %w", v.Name, err)
		}
		out[Key(v)] = m
	}
	return out, nil
}
