// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points REPDIFF_CFG_FILE at a testdata file and resets the
// global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv("REPDIFF_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig loads a testdata file and runs fn against it.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "cp1251", cfg.Data["encoding"])
				assert.Equal(t, 2, cfg.Data["padding"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				compare, ok := cfg.Data["compare"].(map[string]interface{})
				require.True(t, ok, "compare should be a map")
				assert.Equal(t, true, compare["components"])
				assert.Equal(t, "koi8-r", compare["encoding"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "inventory", cfg.Data["name"])
				assert.Equal(t, 3.0, cfg.Data["padding"])
				tags, ok := cfg.Data["tags"].([]interface{})
				require.True(t, ok)
				assert.Len(t, tags, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "broken yaml",
			testFile: "broken.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("REPDIFF_CFG_FILE", "/nonexistent/repdiff.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/reports", cfg.Data["working_folder"])
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("REPDIFF_CFG_FILE", "/nonexistent/path/repdiff.yaml")
	Config = Type{}

	_, err := Load()
	require.ErrorIs(t, err, ErrNoConfig)
	assert.Contains(t, err.Error(), "REPDIFF_CFG_FILE")
}

func TestLoadDirectory(t *testing.T) {
	t.Setenv("REPDIFF_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoadUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REPDIFF_CFG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	cfgDir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "repdiff.yaml"), []byte("separator: ','\n"), 0o600))

	sep, err := GetString("separator")
	require.NoError(t, err)
	assert.Equal(t, ",", sep)
}

func TestGetString(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		v, err := GetString("encoding")
		require.NoError(t, err)
		assert.Equal(t, "cp1251", v)

		v, err = GetString("missing", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", v)

		_, err = GetString("missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = GetString("padding")
		assert.Error(t, err)
	})
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		file string
		want int
	}{
		{"simple.yaml", 2},
		{"mixed-types.yaml", 3},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			withConfig(t, tt.file, func(t *testing.T) {
				v, err := GetInt("padding")
				require.NoError(t, err)
				assert.Equal(t, tt.want, v)
			})
		})
	}

	withConfig(t, "simple.yaml", func(t *testing.T) {
		v, err := GetInt("nothing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = GetInt("encoding")
		assert.Error(t, err)
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetBool("compare.components")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = GetBool("compare.loads")
		assert.Error(t, err, "yes is not a ParseBool literal")
		assert.False(t, v)

		v, err = GetBool("parse.loads", true)
		require.NoError(t, err)
		assert.False(t, v)

		v, err = GetBool("compare.missing", true)
		require.NoError(t, err)
		assert.True(t, v)

		_, err = GetBool("encoding")
		assert.Error(t, err)
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetBool("enabled")
		require.NoError(t, err)
		assert.True(t, v)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetStringSlice("compare.weekly")
		require.NoError(t, err)
		assert.Equal(t, []string{"--loads", "--save weekly.csv"}, v)

		v, err = GetStringSlice("compare.daily", []string{"--components"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--components"}, v)

		_, err = GetStringSlice("encoding")
		assert.Error(t, err)
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := GetStringSlice("tags")
		assert.Error(t, err, "non-string element")
	})
}

func TestNamespace(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "compare"

		v, err := GetString("encoding")
		require.NoError(t, err)
		assert.Equal(t, "koi8-r", v, "namespaced key wins")

		c, err := GetString("colors.title")
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", c, "falls back to global key")

		Config.Namespace = "parse"
		v, err = GetString("encoding")
		require.NoError(t, err)
		assert.Equal(t, "cp866", v)
	})
}

func TestLazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	v, err := GetString("working_folder")
	require.NoError(t, err)
	assert.Equal(t, "/srv/reports", v)
	assert.NotEmpty(t, Config.Source)
}
