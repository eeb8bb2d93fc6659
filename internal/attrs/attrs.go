// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrEmptyKey is returned by Set for a spec with no key.
var ErrEmptyKey = errors.New("attribute key is empty")

var lengthRE = regexp.MustCompile(`-?\d+`)

// Attr is one column of table output. Key is a gjson path into the JSON form
// of an emitted entry, so nested keys like events.0.dt_start work.
type Attr struct {
	// The JSON key to extract from the entry.
	Key string
	// Should this Attr be shown, or was it only listed to hide a default?
	Include bool
	// Column title.
	OutputKey string
	// Transformation spec applied to the rendered value.
	TransformSpec string
}

// Value extracts the attribute from doc and renders it as a cell. Missing
// and null values render as "-".
func (a *Attr) Value(doc gjson.Result) string {
	r := doc.Get(a.Key)
	if !r.Exists() || r.Type == gjson.Null {
		return "-"
	}

	var s string
	switch r.Type {
	case gjson.Number:
		if a.Key == "distance_miles" {
			s = fmt.Sprintf("%.1f", r.Float())
		} else {
			s = r.Raw
		}
	case gjson.True:
		s = "yes"
	case gjson.False:
		s = "no"
	default:
		s = r.String()
	}

	return a.Transform(s)
}

// Transform applies the case and length parts of TransformSpec to value.
// The last case letter wins, so a per-attr spec overrides a global one, and
// the same goes for the last length. A negative length elides the middle.
func (a *Attr) Transform(value string) string {
	result := value

	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	match := lengthRE.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	runes := []rune(result)
	if len(runes) <= abs || abs == 0 {
		return result
	}

	if l > 0 {
		return string(runes[:l])
	}

	side := abs/2 - 1
	if side < 1 {
		return string(runes[:abs])
	}
	return string(runes[:side]) + ".." + string(runes[len(runes)-side:])
}

type AttrList []Attr

// String renders the list in the same form --attrs accepts.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		key := attr.Key
		if !attr.Include && key != "*" {
			key = "!" + key
		}
		result = append(result, fmt.Sprintf("%s:%s:%s", key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Set parses a comma separated list of key[:title[:transform]] specs and
// merges them into the list. A key prefixed with ! hides that column. The
// key * carries a transform for every column and is never shown.
func (a *AttrList) Set(value string) error {
	if value == "" {
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		attr := Attr{Include: true}

		fields := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(fields[jsonIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = strings.TrimSpace(attr.Key[1:])
		}
		if attr.Key == "" {
			return fmt.Errorf("%w: %q", ErrEmptyKey, spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// The title defaults to the last segment of the key.
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		} else {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = strings.ToUpper(segments[len(segments)-1])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// A key already in the list, either as a default or entered twice,
		// is updated in place so column order is kept.
		for i := range *a {
			if (*a)[i].Key == attr.Key {
				(*a)[i].Include = attr.Include
				if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
					(*a)[i].OutputKey = attr.OutputKey
				}
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the * transform spec, if any, to every
// attr in the list.
func (alist *AttrList) SetGlobalTransformSpec() {
	spec := ""
	for a := range *alist {
		if (*alist)[a].Key == "*" {
			spec = (*alist)[a].TransformSpec
			break
		}
	}

	if spec == "" {
		return
	}

	for a := range *alist {
		if (*alist)[a].Key == "*" {
			continue
		}
		(*alist)[a].TransformSpec = spec + "," + (*alist)[a].TransformSpec
	}
}

// Included returns the attrs that should be shown, in order.
func (a AttrList) Included() AttrList {
	var out AttrList
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// Titles returns the column titles of the included attrs.
func (a AttrList) Titles() []string {
	included := a.Included()
	titles := make([]string, 0, len(included))
	for _, attr := range included {
		titles = append(titles, attr.OutputKey)
	}
	return titles
}

func (a *AttrList) Type() string {
	return "list"
}

// Build returns the defaults merged with extras and the global transform
// applied.
func Build(extras string, defaults ...string) (AttrList, error) {
	var al AttrList
	for _, d := range defaults {
		if err := al.Set(d); err != nil {
			return nil, err
		}
	}
	if err := al.Set(extras); err != nil {
		return nil, err
	}
	al.SetGlobalTransformSpec()
	return al, nil
}
