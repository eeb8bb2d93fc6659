// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/fishfry/internal/meta"
)

const bashCompletionScript = `# bash completion for fishfry
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_fishfry()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "search list details schedule update status completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local amenities="--pierogies --accessible --alcohol --takeout"
    local styling="--attrs -a --color -c --no-color --output -o --tldr"

    case "$cmd" in
        search)
            local opts="$amenities $styling --limit -n"
            ;;
        list)
            local opts="$amenities $styling"
            ;;
        details)
            local opts="--color -c --no-color --tldr"
            ;;
        schedule)
            if [[ "$cur" != -* ]]; then
                COMPREPLY=( $(compgen -W "today tomorrow friday" -- "$cur") )
                return 0
            fi
            local opts="--color -c --no-color --tldr"
            ;;
        update)
            local opts="--tldr"
            ;;
        status)
            local opts="--purge --tldr"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text table json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _fishfry fishfry
`

const zshCompletionScript = `#compdef fishfry

_fishfry() {
  local -a cmds
  cmds=(
    'search:search near a location'
    'list:list all fish fries'
    'details:get venue details'
    'schedule:show schedule for a date'
    'update:update local data cache'
    'status:show local cache status'
    'completion:generate shell completion script'
  )

  local -a amenities styling
  amenities=(
  '--pierogies[has homemade pierogies]'
  '--accessible[wheelchair accessible]'
  '--alcohol[serves alcohol]'
  '--takeout[has takeout]'
  )
  styling=(
  '(-a --attrs)'{-a,--attrs}'[table columns]:attrs'
  '(-c --color --no-color)'{-c,--color}'[enable colored text]'
  '(-c --color)--no-color[disable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text table json yaml)'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'fishfry commands' cmds
    return
  fi

  case $words[2] in
    search)
      _arguments -C \
        $amenities \
        $styling \
        '(-n --limit)'{-n,--limit}'[max results]:limit' \
        '1:location'
      ;;
    list)
      _arguments -C $amenities $styling
      ;;
    details)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--tldr[show tldr page]' \
        '1:venue name'
      ;;
    schedule)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--tldr[show tldr page]' \
        '1:date:(today tomorrow friday)'
      ;;
    update)
      _arguments '--tldr[show tldr page]'
      ;;
    status)
      _arguments '--purge[delete the cached data]' '--tldr[show tldr page]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _fishfry fishfry
`

// CompletionCommandAction prints the completion script for the requested
// shell, guessing from $SHELL when none is given.
func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(m.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(m.Stdout, zshCompletionScript)
	default:
		printf(m, "usage: fishfry completion [bash|zsh]\n")
		return errExit
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "fishfry completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
