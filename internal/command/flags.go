// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/filters"
)

// newTLDRFlag returns --tldr, hidden when the tldr client isn't installed.
// Each command gets its own instance since flags carry parse state.
func newTLDRFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// NewFilterFlags returns the amenity switches shared by search and list.
func NewFilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "pierogies",
			Usage:       "has homemade pierogies",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "accessible",
			Usage:       "wheelchair accessible",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "alcohol",
			Usage:       "serves alcohol",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "takeout",
			Usage:       "has takeout",
			HideDefault: true,
		},
	}
}

// NewColorFlag returns --color, with its default taken from the config file
// under ns first and then at the top level.
func NewColorFlag(ns string, cfgPath string) *cli.BoolWithInverseFlag {
	return &cli.BoolWithInverseFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("color", altsrc.StringSourcer(cfgPath)),
		),
		Value: false,
	}
}

// NewOutputFlags returns --attrs, --color and --output, sourced like
// NewColorFlag.
func NewOutputFlags(ns string, cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "table columns as key[:title[:transform]],...",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"attrs", altsrc.StringSourcer(cfgPath)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, AttrsValidator)
			},
		},
		NewColorFlag(ns, cfgPath),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, table, json, yaml)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfgPath)),
				yaml.YAML("output", altsrc.StringSourcer(cfgPath)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, OutputValidator)
			},
		},
	}
}

// NewLimitFlag returns --limit/-n for search.
func NewLimitFlag(ns string, cfgPath string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "max results",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"limit", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("limit", altsrc.StringSourcer(cfgPath)),
		),
		Value: filters.DefaultLimit,
	}
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
