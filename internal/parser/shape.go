// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"regexp"

	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/record"
)

// Kind names a line shape.
type Kind string

const (
	// KindComponent is a row of the installed components table:
	// type, name, dotted version, size, path.
	KindComponent Kind = "component"
	// KindLoad is a row of the module load log: name, DD\MM\YYYY HH:MM
	// timestamp, size, path.
	KindLoad Kind = "load"
)

// componentRegex matches lines like:
//
//	COMP  libfoo  1.0.2  12 345  /usr/lib/libfoo.so
//
// Leading noise such as table borders is ignored. Noise never holds a letter
// or digit in any script, so a Cyrillic type column is not swallowed. Size is
// a digit run that may hold spaces as thousands separators and must be
// followed by whitespace, so the path is never folded into it.
var componentRegex = regexp.MustCompile(
	`^[^\p{L}\p{N}_]*(?P<type>\S+)\s+(?P<name>\S+)\s+(?P<version>[\d.]+)\s+(?P<size>[\d\s]+)\s+(?P<path>.+)$`,
)

// loadRegex matches lines like:
//
//	driver.sys  01\02\2024 10:15  2 048  C:\drivers\driver.sys
var loadRegex = regexp.MustCompile(
	`^\s*(?P<name>\S+)\s+(?P<version>\d{2}\\\d{2}\\\d{4} \d\d:\d\d)\s+(?P<size>[\d\s]+)\s+(?P<path>.+)$`,
)

// Entry is one matched report line.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
	record.Record
}

// Shape is a named line matcher.
type Shape struct {
	Kind Kind
	re   *regexp.Regexp
}

// Shapes lists the supported line shapes in priority order.
var Shapes = []Shape{
	{Kind: KindComponent, re: componentRegex},
	{Kind: KindLoad, re: loadRegex},
}

// Match tries the shape against a single line. A line that fits the pattern
// but carries a size that cannot be normalized is treated as a mismatch.
func (s Shape) Match(line string) (Entry, bool) {
	m := s.re.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	group := func(name string) string {
		return m[s.re.SubexpIndex(name)]
	}

	size, err := record.NormalizeSize(group("size"))
	if err != nil {
		log.Debugf("%s line skipped: %v", s.Kind, err)
		return Entry{}, false
	}

	return Entry{
		Name: group("name"),
		Kind: s.Kind,
		Path: group("path"),
		Record: record.Record{
			Version: group("version"),
			Size:    size,
		},
	}, true
}
