// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/repdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for repdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_repdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "compare parse completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --output -o --padding --separator --sort -s --titles -t --components --loads --encoding -e --profile --region --endpoint --cache-hours"

    case "$cmd" in
        compare)
            local opts="$common --pick -p --save"
            ;;
        parse)
            local opts="$common"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml csv delta" -- "$cur") )
            return 0
            ;;
        --encoding|-e)
            COMPREPLY=( $(compgen -W "cp866 cp1251 cp1252 koi8-r utf-8" -- "$cur") )
            return 0
            ;;
        --save)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Reports are files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _repdiff repdiff
`

const zshCompletionScript = `#compdef repdiff

_repdiff() {
  local -a cmds
  cmds=(
    'compare:compare two inventory reports'
    'parse:list the lines recognised in one report'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml csv delta)'
  '--padding[spaces between columns]:padding'
  '--separator[thousands separator]:separator'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--components[compare component lines]'
  '--loads[compare load lines]'
  '(-e --encoding)'{-e,--encoding}'[report code page]:encoding:(cp866 cp1251 cp1252 koi8-r utf-8)'
  '--profile[AWS profile]:profile'
  '--region[AWS region]:region'
  '--endpoint[S3 endpoint]:endpoint'
  '--cache-hours[purge cache older than hours]:hours'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'repdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    compare)
      _arguments -C \
        $common \
        '(-p --pick)'{-p,--pick}'[pick reports interactively]' \
        '--save[write CSV to file]:file:_files' \
        '1:report 1:_files' \
        '2:report 2:_files'
      ;;
    parse)
      _arguments -C \
        $common \
        '1:report:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:report:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _repdiff repdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
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
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		fmt.Fprintln(os.Stderr, "usage: repdiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "repdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
