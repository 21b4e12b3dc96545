package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/sidepane/internal/ui/theme"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sidepane completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  sidepane completion bash > /usr/local/etc/bash_completion.d/sidepane\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  sidepane completion zsh > \"${fpath[1]}/_sidepane\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  sidepane completion fish > ~/.config/fish/completions/sidepane.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(2)
	}

	script, err := completionScript(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	fmt.Print(script)
}

func completionScript(shell string) (string, error) {
	switch shell {
	case "bash":
		return generateBashCompletion(), nil
	case "zsh":
		return generateZshCompletion(), nil
	case "fish":
		return generateFishCompletion(), nil
	}
	return "", fmt.Errorf("unsupported shell %q (use bash, zsh, or fish)", shell)
}

// themeKeys lists the built-in theme names in the form --theme accepts.
func themeKeys() string {
	names := theme.Names()
	keys := make([]string, 0, len(names))
	for _, n := range names {
		t, _ := theme.Get(n)
		keys = append(keys, t.Key())
	}
	return strings.Join(keys, " ")
}

func generateBashCompletion() string {
	return strings.ReplaceAll(`# bash completion for sidepane                           -*- shell-script -*-

_sidepane() {
    local cur prev words cword
    _init_completion || return

    local commands="options validate completion version help"

    local tui_flags="--config --direction --gutter --theme --log --version"
    local options_flags="--config --json"

    local directions="left right"
    local gutters="line dotted"
    local themes="@THEMES@"
    local shells="bash zsh fish"

    case "${prev}" in
        --config|--log)
            _filedir
            return
            ;;
        --direction)
            COMPREPLY=($(compgen -W "${directions}" -- "${cur}"))
            return
            ;;
        --gutter)
            COMPREPLY=($(compgen -W "${gutters}" -- "${cur}"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            return
            ;;
    esac

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    case "${command}" in
        options)
            COMPREPLY=($(compgen -W "${options_flags}" -- "${cur}"))
            ;;
        validate)
            COMPREPLY=($(compgen -f -X '!*.y*ml' -- "${cur}"))
            _filedir -d
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        -*)
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _sidepane sidepane
`, "@THEMES@", themeKeys())
}

func generateZshCompletion() string {
	return strings.ReplaceAll(`#compdef sidepane

# zsh completion for sidepane

_sidepane() {
    local -a commands
    commands=(
        'options:Print the effective sidebar options'
        'validate:Validate a config file'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--config[Path to a config file]:config file:_files -g "*.y*ml"' \
        '--direction[Sidebar side]:direction:(left right)' \
        '--gutter[Gutter style]:style:(line dotted)' \
        '--theme[Theme name]:theme:(@THEMES@)' \
        '--log[Append log output to this file]:log file:_files' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'sidepane commands' commands
            ;;
        args)
            case $words[1] in
                options)
                    _arguments \
                        '--config[Path to a config file]:config file:_files -g "*.y*ml"' \
                        '--json[Print JSON instead of YAML]'
                    ;;
                validate)
                    _arguments \
                        '*:config file:_files -g "*.y*ml"'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_sidepane "$@"
`, "@THEMES@", themeKeys())
}

func generateFishCompletion() string {
	return strings.ReplaceAll(`# fish completion for sidepane

# Disable file completions by default
complete -c sidepane -f

# Subcommands
complete -c sidepane -n '__fish_use_subcommand' -a options -d 'Print the effective sidebar options'
complete -c sidepane -n '__fish_use_subcommand' -a validate -d 'Validate a config file'
complete -c sidepane -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c sidepane -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c sidepane -n '__fish_use_subcommand' -a help -d 'Show help message'

# TUI flags
complete -c sidepane -n '__fish_use_subcommand' -l config -d 'Path to a config file' -rF
complete -c sidepane -n '__fish_use_subcommand' -l direction -d 'Sidebar side' -ra 'left right'
complete -c sidepane -n '__fish_use_subcommand' -l gutter -d 'Gutter style' -ra 'line dotted'
complete -c sidepane -n '__fish_use_subcommand' -l theme -d 'Theme name' -ra '@THEMES@'
complete -c sidepane -n '__fish_use_subcommand' -l log -d 'Append log output to this file' -rF
complete -c sidepane -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# options flags
complete -c sidepane -n '__fish_seen_subcommand_from options' -l config -d 'Path to a config file' -rF
complete -c sidepane -n '__fish_seen_subcommand_from options' -l json -d 'Print JSON instead of YAML'

# validate - file completion
complete -c sidepane -n '__fish_seen_subcommand_from validate' -F

# completion - shell names
complete -c sidepane -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`, "@THEMES@", themeKeys())
}
