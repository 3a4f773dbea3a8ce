// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/tfctl/repdiff/internal/record"
)

var bothShapes = Options{Components: true, Loads: true, Encoding: "utf-8"}

func TestShapeMatch(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		kind  Kind
		want  Entry
		match bool
	}{
		{
			name: "component with grouped size",
			line: "COMP  libfoo  1.0.2  12 345  /usr/lib/libfoo.so",
			kind: KindComponent,
			want: Entry{
				Name:   "libfoo",
				Kind:   KindComponent,
				Path:   "/usr/lib/libfoo.so",
				Record: record.Record{Version: "1.0.2", Size: 12345},
			},
			match: true,
		},
		{
			name: "component with leading noise and spaced path",
			line: "| DLL core.dll 8.3.24.1342 1 048 576 C:\\Program Files\\1cv8\\bin\\core.dll",
			kind: KindComponent,
			want: Entry{
				Name:   "core.dll",
				Kind:   KindComponent,
				Path:   "C:\\Program Files\\1cv8\\bin\\core.dll",
				Record: record.Record{Version: "8.3.24.1342", Size: 1048576},
			},
			match: true,
		},
		{
			name: "component with leading zeros",
			line: "LIB zlib 1.2 007 /lib/zlib",
			kind: KindComponent,
			want: Entry{
				Name:   "zlib",
				Kind:   KindComponent,
				Path:   "/lib/zlib",
				Record: record.Record{Version: "1.2", Size: 7},
			},
			match: true,
		},
		{
			name: "load event",
			line: "driver.sys  01\\02\\2024 10:15  2 048  C:\\drivers\\driver.sys",
			kind: KindLoad,
			want: Entry{
				Name:   "driver.sys",
				Kind:   KindLoad,
				Path:   "C:\\drivers\\driver.sys",
				Record: record.Record{Version: "01\\02\\2024 10:15", Size: 2048},
			},
			match: true,
		},
		{
			name: "load event with leading whitespace",
			line: "    backend.dll 31\\12\\2023 23:59 512 D:\\bin\\backend.dll",
			kind: KindLoad,
			want: Entry{
				Name:   "backend.dll",
				Kind:   KindLoad,
				Path:   "D:\\bin\\backend.dll",
				Record: record.Record{Version: "31\\12\\2023 23:59", Size: 512},
			},
			match: true,
		},
		{name: "load line is not a component", line: "driver.sys  01\\02\\2024 10:15  2 048  C:\\x", kind: KindComponent},
		{name: "component line is not a load", line: "COMP libfoo 1.0.2 12 /usr/lib/libfoo.so", kind: KindLoad},
		{name: "header", line: "Type  Name  Version  Size  Path", kind: KindComponent},
		{name: "blank", line: "", kind: KindComponent},
		{name: "size of spaces only", line: "COMP libfoo 1.0.2     /usr/lib/libfoo.so", kind: KindComponent},
		{name: "missing path", line: "COMP libfoo 1.0.2 12345", kind: KindComponent},
		{name: "timestamp with dashes", line: "driver.sys 01-02-2024 10:15 2048 C:\\x", kind: KindLoad},
		{name: "cyrillic type column is not noise", line: "Тип COMP libfoo 1.0.2 12 /p", kind: KindComponent},
	}

	shapes := map[Kind]Shape{}
	for _, s := range Shapes {
		shapes[s.Kind] = s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shapes[tt.kind].Match(tt.line)
			assert.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShapesOrder(t *testing.T) {
	require.Len(t, Shapes, 2)
	assert.Equal(t, KindComponent, Shapes[0].Kind)
	assert.Equal(t, KindLoad, Shapes[1].Kind)
}

const mixedReport = `Installed components report
Type  Name  Version  Size  Path
------------------------------------------------------------
COMP  libfoo  1.0.2  12 345  /usr/lib/libfoo.so
COMP  libbar  2.1    1 000   /usr/lib/libbar.so

Loaded modules
driver.sys  01\02\2024 10:15  2 048  C:\drivers\driver.sys
net.sys     01\02\2024 10:16  4 096  C:\drivers\net.sys
COMP  libfoo  1.0.3  12 400  /usr/lib/libfoo.so
Total: 4 components
`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want record.Records
	}{
		{
			name: "both shapes, last occurrence wins",
			opts: bothShapes,
			want: record.Records{
				"libfoo":     {Version: "1.0.3", Size: 12400},
				"libbar":     {Version: "2.1", Size: 1000},
				"driver.sys": {Version: "01\\02\\2024 10:15", Size: 2048},
				"net.sys":    {Version: "01\\02\\2024 10:16", Size: 4096},
			},
		},
		{
			name: "components only",
			opts: Options{Components: true},
			want: record.Records{
				"libfoo": {Version: "1.0.3", Size: 12400},
				"libbar": {Version: "2.1", Size: 1000},
			},
		},
		{
			name: "loads only",
			opts: Options{Loads: true},
			want: record.Records{
				"driver.sys": {Version: "01\\02\\2024 10:15", Size: 2048},
				"net.sys":    {Version: "01\\02\\2024 10:16", Size: 4096},
			},
		},
		{
			name: "nothing enabled",
			opts: Options{},
			want: record.Records{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(mixedReport), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntriesKeepsOrderAndDuplicates(t *testing.T) {
	entries, err := ParseEntries(strings.NewReader(mixedReport), bothShapes)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"libfoo", "libbar", "driver.sys", "net.sys", "libfoo"}, names)
	assert.Equal(t, KindLoad, entries[2].Kind)
}

func TestParseSkipsNoiseOnly(t *testing.T) {
	got, err := Parse(strings.NewReader("Report header\n\nTotal size: n/a\n"), bothShapes)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCRLF(t *testing.T) {
	got, err := Parse(strings.NewReader("COMP libfoo 1.0.2 12 345 /usr/lib/libfoo.so\r\n"), bothShapes)
	require.NoError(t, err)
	assert.Equal(t, record.Records{"libfoo": {Version: "1.0.2", Size: 12345}}, got)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Components: true}.Validate())
	assert.NoError(t, Options{Loads: true}.Validate())
	assert.ErrorIs(t, Options{}.Validate(), ErrNoShapeEnabled)
	assert.NoError(t, DefaultOptions().Validate())
}

func TestParseFileOEM(t *testing.T) {
	text := "Отчёт о компонентах\nCOMP  модуль.dll  1.0.2  12 345  C:\\Программы\\модуль.dll\n"
	raw, err := charmap.CodePage866.NewEncoder().String(text)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	got, err := ParseFile(context.Background(), path, Options{Components: true})
	require.NoError(t, err)
	assert.Equal(t, record.Records{"модуль.dll": {Version: "1.0.2", Size: 12345}}, got)

	// Reading the same bytes as UTF-8 must not produce the Cyrillic key.
	got, err = ParseFile(context.Background(), path, Options{Components: true, Encoding: "utf-8"})
	require.NoError(t, err)
	assert.NotContains(t, got, "модуль.dll")
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("COMP a 1 1 /a\n"), 0o600))

	tests := []struct {
		name string
		path string
		opts Options
	}{
		{"missing file", filepath.Join(dir, "nope.txt"), DefaultOptions()},
		{"directory", dir, DefaultOptions()},
		{"unknown encoding", path, Options{Components: true, Encoding: "ebcdic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFile(context.Background(), tt.path, tt.opts)
			assert.Nil(t, got)

			var accessErr *FileAccessError
			require.True(t, errors.As(err, &accessErr))
			assert.Equal(t, tt.path, accessErr.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestParseFileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseFile(ctx, "whatever.txt", DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, charmap.CodePage866, enc)

	enc, err = LookupEncoding("Windows-1251")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1251, enc)

	_, err = LookupEncoding("latin-9")
	assert.ErrorContains(t, err, "unsupported encoding")
	assert.Contains(t, Encodings(), "oem")
}
