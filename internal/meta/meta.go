// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tfctl/repdiff/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the folder the picker browses, and the
// starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	WorkingDir  string
	StartingDir string
}

// DefaultWorkingDir returns the operator's Downloads folder, falling back to
// the current directory when the home directory is unknown.
func DefaultWorkingDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// ResolveWorkingDir returns the configured working folder, expanding a leading
// "~/" against the home directory.
func ResolveWorkingDir() string {
	dir, _ := config.GetString("working_folder", "")
	if dir == "" {
		return DefaultWorkingDir()
	}
	if len(dir) > 1 && dir[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[2:])
		}
	}
	return dir
}
