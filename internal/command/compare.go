// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/repdiff/internal/cacheutil"
	"github.com/tfctl/repdiff/internal/config"
	"github.com/tfctl/repdiff/internal/differ"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/meta"
	"github.com/tfctl/repdiff/internal/output"
	"github.com/tfctl/repdiff/internal/source"
)

// defaultSaveName is used when --save names a directory.
const defaultSaveName = "save.csv"

func newPickFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "pick",
		Aliases: []string{"p"},
		Usage:   "choose the two reports interactively from the working folder",
		Value:   false,
	}
}

// ErrTwoReports is returned when compare is not given exactly two reports.
var ErrTwoReports = errors.New("compare needs exactly two reports (or --pick)")

// pickReports is swapped out by tests.
var pickReports = func(dir string) ([]string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("--pick needs an interactive terminal")
	}

	items, err := differ.ListReports(dir, "*.txt")
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return nil, fmt.Errorf("need at least two reports in %s, found %d", dir, len(items))
	}

	picked, err := differ.SelectReports(items)
	if err != nil || picked == nil {
		return nil, err
	}

	return []string{picked[0].Path, picked[1].Path}, nil
}

// compareCommandAction loads two reports, compares them and renders the
// differences.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "compare"

	reports := cmd.Args().Slice()
	if len(reports) == 0 && cmd.Bool("pick") {
		picked, err := pickReports(m.WorkingDir)
		if err != nil {
			return err
		}
		if picked == nil {
			log.Debugf("picker aborted")
			return nil
		}
		reports = picked
	}

	if len(reports) != 2 {
		return ErrTwoReports
	}
	if reports[0] == source.Stdin && reports[1] == source.Stdin {
		return fmt.Errorf("only one report can be read from stdin")
	}

	if hours := cmd.Int("cache-hours"); hours > 0 {
		if err := cacheutil.Purge(hours); err != nil {
			log.Warnf("cache purge failed: %v", err)
		}
	}

	popts := parserOptions(cmd)
	sopts := sourceOptions(cmd)

	first, err := source.Load(ctx, reports[0], popts, sopts)
	if err != nil {
		return err
	}
	second, err := source.Load(ctx, reports[1], popts, sopts)
	if err != nil {
		return err
	}
	log.Debugf("records: %s=%d %s=%d", reports[0], len(first), reports[1], len(second))

	result := differ.Compare(first, second)
	oopts := outputOptions(cmd)

	if err := output.SliceDiceSpit(writer(cmd), first, second, result, oopts); err != nil {
		return err
	}

	if path := cmd.String("save"); path != "" {
		rows := output.Rows(first, second, result, oopts)
		if err := output.SaveCSV(savePath(path), rows, oopts.Separator); err != nil {
			return err
		}
	}

	return nil
}

// savePath resolves --save. A directory receives save.csv.
func savePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, defaultSaveName)
	}
	return path
}

// sourceOptions collects the remote report flags.
func sourceOptions(c *cli.Command) source.Options {
	return source.Options{
		Profile:  c.String("profile"),
		Region:   c.String("region"),
		Endpoint: c.String("endpoint"),
	}
}

// outputOptions collects the presentation flags.
func outputOptions(c *cli.Command) output.Options {
	return output.Options{
		Format:    c.String("output"),
		Filter:    c.String("filter"),
		Sort:      c.String("sort"),
		Separator: c.String("separator"),
		Color:     c.Bool("color"),
		Titles:    c.Bool("titles"),
		Padding:   c.Int("padding"),
	}
}

// writer returns the root command's writer, falling back to stdout.
func writer(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// compareCommandBuilder constructs the "compare" subcommand.
func compareCommandBuilder(meta meta.Meta) *cli.Command {
	path := meta.Config.Source

	flags := append(NewGlobalFlags("compare", path), NewShapeFlags("compare", path)...)
	flags = append(flags, NewSourceFlags("compare", path)...)
	flags = append(flags,
		newPickFlag(),
		&cli.StringFlag{
			Name:    "save",
			Usage:   "also write the differences as CSV to this file",
			Sources: valueChain("compare", "save", path),
		},
	)

	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two inventory reports",
		UsageText: "repdiff compare [flags] REPORT1 REPORT2",
		Metadata:  map[string]any{"meta": meta},
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: compareCommandAction,
	}
}
