// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/repdiff/internal/command"
	"github.com/tfctl/repdiff/internal/config"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @sets and drops overridden flags.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args = expandSets(args, func(key string) []string {
		entries, _ := config.GetStringSlice(key)
		return entries
	})
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args, command.BoolFlagNames())
}

// expandSets replaces every @name argument after the command with the entries
// of the config list <command>.<name>. Each entry may hold several words.
func expandSets(args []string, lookup func(key string) []string) []string {
	if len(args) < 3 {
		return args
	}

	out := append([]string{}, args[:2]...)
	for _, a := range args[2:] {
		if len(a) < 2 || !strings.HasPrefix(a, "@") {
			out = append(out, a)
			continue
		}

		key := args[1] + "." + a[1:]
		entries := lookup(key)
		if len(entries) == 0 {
			log.Warnf("argument set %s is empty or missing", key)
		}
		for _, entry := range entries {
			out = append(out, splitFields(entry)...)
		}
	}
	return out
}

// splitFields splits s on whitespace. Single or double quotes group words
// and are removed.
func splitFields(s string) []string {
	var (
		result  []string
		current strings.Builder
		quote   rune
		inField bool
	)

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inField {
				result = append(result, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if inField {
		result = append(result, current.String())
	}

	return result
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command, so later flags override earlier ones (including flags from an
// expanded @set). A flag takes the following argument as its value unless it
// is boolean, uses = syntax, or is followed by another flag.
func deduplicateFlags(args []string, boolFlags []string) []string {
	if len(args) <= 2 {
		return args
	}

	isBool := make(map[string]bool, len(boolFlags))
	for _, b := range boolFlags {
		isBool[b] = true
	}

	type token struct {
		key   string
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]

		if a == "--" {
			for _, rest := range args[i:] {
				tokens = append(tokens, token{parts: []string{rest}})
			}
			break
		}

		if !isFlag(a) {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		parts := []string{a}
		if !hasValue && !isBool[name] && i+1 < len(args) && !isFlag(args[i+1]) {
			parts = append(parts, args[i+1])
			i++
		}
		tokens = append(tokens, token{key: name, parts: parts})
	}

	last := map[string]int{}
	for i, tk := range tokens {
		if tk.key != "" {
			last[tk.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, tk := range tokens {
		if tk.key != "" && last[tk.key] != i {
			continue
		}
		out = append(out, tk.parts...)
	}
	return out
}

// isFlag reports whether a looks like a flag rather than a value or the
// stdin placeholder.
func isFlag(a string) bool {
	return len(a) > 1 && strings.HasPrefix(a, "-")
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}
