// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/repdiff/internal/config"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/meta"
	"github.com/tfctl/repdiff/internal/output"
	"github.com/tfctl/repdiff/internal/source"
)

// parseCommandAction prints the lines recognised in a single report so an
// operator can check which shapes matched.
func parseCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "parse"

	location := source.Stdin
	switch args := cmd.Args().Slice(); len(args) {
	case 0:
	case 1:
		location = args[0]
	default:
		return fmt.Errorf("parse takes one report, got %d", len(args))
	}

	entries, err := source.LoadEntries(ctx, location, parserOptions(cmd), sourceOptions(cmd))
	if err != nil {
		return err
	}
	log.Debugf("entries: %d", len(entries))

	return output.SpitEntries(writer(cmd), entries, outputOptions(cmd))
}

// parseCommandBuilder constructs the "parse" subcommand.
func parseCommandBuilder(meta meta.Meta) *cli.Command {
	path := meta.Config.Source

	var flags []cli.Flag
	for _, f := range NewGlobalFlags("parse", path) {
		if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "output" {
			sf.Validator = func(value string) error {
				return FlagValidators(value, ListOutputValidator)
			}
		}
		flags = append(flags, f)
	}
	flags = append(flags, NewShapeFlags("parse", path)...)
	flags = append(flags, NewSourceFlags("parse", path)...)

	return &cli.Command{
		Name:      "parse",
		Usage:     "list the lines recognised in one report",
		UsageText: "repdiff parse [flags] [REPORT]",
		Metadata:  map[string]any{"meta": meta},
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: parseCommandAction,
	}
}
