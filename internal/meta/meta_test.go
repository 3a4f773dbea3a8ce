// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/repdiff/internal/config"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("REPDIFF_CFG_FILE", path)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestResolveWorkingDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("default", func(t *testing.T) {
		writeConfig(t, "encoding: cp866\n")
		assert.Equal(t, filepath.Join(home, "Downloads"), ResolveWorkingDir())
	})

	t.Run("absolute", func(t *testing.T) {
		writeConfig(t, "working_folder: /srv/reports\n")
		assert.Equal(t, "/srv/reports", ResolveWorkingDir())
	})

	t.Run("home relative", func(t *testing.T) {
		writeConfig(t, "working_folder: ~/inventory\n")
		assert.Equal(t, filepath.Join(home, "inventory"), ResolveWorkingDir())
	})
}
