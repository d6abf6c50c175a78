// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/brewdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for brewdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_brewdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff state intent completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--mas --output -o"

    # Determine if the optional PROFILE (first non-flag after subcommand) has
    # already been provided
    local have_profile=0
    local idx=2
    while [[ $idx -lt ${COMP_CWORD} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            have_profile=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
        diff)
            local opts="$common --color -c --concurrent --exit-code --format -f --old --profile -p --stats -S --summary -s"
            ;;
        intent)
            local opts="$common --profile -p"
            ;;
        state)
            local opts="$common"
            have_profile=1
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --format|-f)
            COMPREPLY=( $(compgen -W "grouped blocks" -- "$cur") )
            return 0
            ;;
        --old|--profile|-p)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    # If current token starts with '-', or we've already consumed PROFILE, offer flags
    if [[ "$cur" == -* || $have_profile -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise, we're on the (optional) PROFILE positional, complete directories
    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _brewdiff brewdiff
`

const zshCompletionScript = `#compdef brewdiff

_brewdiff() {
  local -a cmds
  cmds=(
    'diff:compare installed Homebrew packages with the system profile'
    'state:show installed Homebrew packages'
    'intent:show packages declared by the system profile'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
    '--mas[include Mac App Store apps]'
    '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'brewdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    diff)
      _arguments -C \
        $common \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--concurrent[collect state and intent concurrently]' \
        '--exit-code[exit with status 3 when changes are detected]' \
        '(-f --format)'{-f,--format}'[text layout]:layout:(grouped blocks)' \
        '--old[previous profile]:profile:_directories' \
        '(-p --profile)'{-p,--profile}'[system profile]:profile:_directories' \
        '(-S --stats)'{-S,--stats}'[show per-category counts]' \
        '(-s --summary)'{-s,--summary}'[show totals]' \
        '::PROFILE:_directories'
      ;;
    intent)
      _arguments -C \
        $common \
        '(-p --profile)'{-p,--profile}'[system profile]:profile:_directories' \
        '::PROFILE:_directories'
      ;;
    state)
      _arguments -C $common
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _brewdiff brewdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print usage
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: brewdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "brewdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
