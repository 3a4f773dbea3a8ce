// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/repdiff/internal/output"
	"github.com/tfctl/repdiff/internal/parser"
)

// NewGlobalFlags returns the presentation flags shared by every command that
// renders results. ns is the command name and path is the config file; values
// resolve from the flag, then REPDIFF_* env, then ns.<flag> and <flag> in the
// config file.
func NewGlobalFlags(ns string, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
			Sources: valueChain(ns, "color", path, "REPDIFF_COLOR"),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   output.FormatText,
			Sources: valueChain(ns, "output", path, "REPDIFF_OUTPUT"),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "spaces between text columns",
			Value:   2,
			Sources: valueChain(ns, "padding", path),
		},
		&cli.StringFlag{
			Name:    "separator",
			Usage:   "thousands separator for displayed sizes",
			Value:   output.DefaultSeparator,
			Sources: valueChain(ns, "separator", path, "REPDIFF_SEPARATOR"),
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
			Sources: valueChain(ns, "sort", path),
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   true,
			Sources: valueChain(ns, "titles", path),
		},
	}

	return
}

// NewShapeFlags returns the flags that select which report lines are parsed
// and how the report bytes are decoded.
func NewShapeFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "components",
			Usage:   "compare installed component lines",
			Value:   true,
			Sources: valueChain(ns, "components", path, "REPDIFF_COMPONENTS"),
		},
		&cli.BoolFlag{
			Name:    "loads",
			Usage:   "compare loaded module lines",
			Value:   false,
			Sources: valueChain(ns, "loads", path, "REPDIFF_LOADS"),
		},
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "report code page",
			Value:   parser.DefaultEncoding,
			Sources: valueChain(ns, "encoding", path, "REPDIFF_ENCODING"),
			Validator: func(value string) error {
				return FlagValidators(value, EncodingValidator)
			},
		},
	}
}

// NewSourceFlags returns the flags used to reach s3:// reports.
func NewSourceFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "cache-hours",
			Usage:   "purge cached remote reports older than this many hours",
			Value:   0,
			Sources: valueChain(ns, "cache-hours", path, "REPDIFF_CACHE_HOURS"),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "custom S3 endpoint",
			Sources: valueChain(ns, "endpoint", path, "REPDIFF_S3_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: valueChain(ns, "profile", path, "REPDIFF_PROFILE", "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region",
			Sources: valueChain(ns, "region", path, "REPDIFF_REGION", "AWS_REGION"),
		},
	}
}

// valueChain builds a value source chain from env vars and, when a config
// file is known, the namespaced and global config keys.
func valueChain(ns string, name string, path string, envs ...string) cli.ValueSourceChain {
	chain := cli.EnvVars(envs...)
	if path == "" {
		return chain
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return chain
}

// BoolFlagNames returns every spelling of the boolean flags so argument
// preprocessing knows they never take a separate value.
func BoolFlagNames() []string {
	var names []string
	for _, set := range [][]cli.Flag{NewGlobalFlags("", ""), NewShapeFlags("", ""), {newPickFlag()}} {
		for _, f := range set {
			if _, ok := f.(*cli.BoolFlag); !ok {
				continue
			}
			for _, n := range f.Names() {
				if len(n) == 1 {
					names = append(names, "-"+n)
				} else {
					names = append(names, "--"+n)
				}
			}
		}
	}
	return names
}
