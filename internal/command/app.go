// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/repdiff/internal/config"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the repdiff
	// subcommand and also the namespace used when retrieving config values.
	// arg[1] could be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine; every value has a default. A broken one
	// is not.
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNoConfig) {
			return nil, err
		}
		log.Debugf("no config loaded: %v", err)
	}
	config.Config.Namespace = ns

	wd := meta.ResolveWorkingDir()
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		WorkingDir:  wd,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "repdiff",
		Usage: "Inventory report differ",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "repdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compareCommandBuilder(meta),
		parseCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
