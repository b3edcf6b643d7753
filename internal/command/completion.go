// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/aocctl/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for aocctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_aocctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "input cache completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--session --base-url --cache-dir --backend --s3-bucket --s3-prefix --s3-region --s3-profile --s3-endpoint"

    case "$cmd" in
        input)
            local opts="$common --output -o --path"
            ;;
        cache)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "ls clear path" -- "$cur") )
                return 0
            fi
            local opts="$common --titles -t --no-titles"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "raw json" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--backend" ]]; then
        COMPREPLY=( $(compgen -W "local s3" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--cache-dir" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _aocctl aocctl
`

const zshCompletionScript = `#compdef aocctl

_aocctl() {
  local -a cmds
  cmds=(
    'input:print a puzzle input'
    'cache:inspect or clear the input cache'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '--session[session cookie]:session'
  '--base-url[base URL of the puzzle site]:url'
  '--cache-dir[cache root]:dir:_directories'
  '--backend[cache backend]:backend:(local s3)'
  '--s3-bucket[bucket]:bucket'
  '--s3-prefix[key prefix]:prefix'
  '--s3-region[region]:region'
  '--s3-profile[profile]:profile'
  '--s3-endpoint[endpoint]:url'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'aocctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    input)
      _arguments -C \
        $common \
        '(-o --output)'{-o,--output}'[output format]:format:(raw json)' \
        '--path[print the cache location]' \
        '1:year' \
        '2:day'
      ;;
    cache)
      if (( CURRENT == 3 )); then
        _values 'cache commands' ls clear path
        return
      fi
      _arguments -C \
        $common \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _aocctl aocctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	w := Writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: aocctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "aocctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
