// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/record"
)

// maxLineSize bounds a single report line. Paths can be long but a report
// line never comes close to this.
const maxLineSize = 1024 * 1024

// Options selects which line shapes are honoured and how the raw bytes are
// decoded.
type Options struct {
	Components bool
	Loads      bool
	Encoding   string
}

// DefaultOptions mirrors the out-of-the-box behaviour: installed components
// only, OEM code page.
func DefaultOptions() Options {
	return Options{Components: true, Encoding: DefaultEncoding}
}

// Validate refuses an Options value that can never produce a record.
func (o Options) Validate() error {
	if !o.Components && !o.Loads {
		return ErrNoShapeEnabled
	}
	return nil
}

// enabled returns the shapes switched on by o, in priority order.
func (o Options) enabled() []Shape {
	var shapes []Shape
	for _, s := range Shapes {
		switch s.Kind {
		case KindComponent:
			if o.Components {
				shapes = append(shapes, s)
			}
		case KindLoad:
			if o.Loads {
				shapes = append(shapes, s)
			}
		}
	}
	return shapes
}

// MatchLine runs the enabled shapes against line and returns the first hit.
func (o Options) MatchLine(line string) (Entry, bool) {
	for _, s := range o.enabled() {
		if e, ok := s.Match(line); ok {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseEntries scans already decoded text and returns every matched line in
// file order, duplicates included.
func ParseEntries(r io.Reader, opts Options) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		e, ok := opts.MatchLine(line)
		if !ok {
			log.Tracef("line %d skipped: %q", lineNo, line)
			continue
		}
		log.Tracef("line %d %s: name=%s version=%s size=%d", lineNo, e.Kind, e.Name, e.Version, e.Size)
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading report at line %d: %w", lineNo+1, err)
	}

	return entries, nil
}

// Parse scans already decoded text and returns the records keyed by name.
// When a name shows up more than once the last occurrence wins.
func Parse(r io.Reader, opts Options) (record.Records, error) {
	entries, err := ParseEntries(r, opts)
	if err != nil {
		return nil, err
	}

	records := make(record.Records, len(entries))
	for _, e := range entries {
		records[e.Name] = e.Record
	}
	return records, nil
}

// ParseReader decodes r with opts.Encoding and parses it. name is used only
// for error reporting.
func ParseReader(r io.Reader, name string, opts Options) (record.Records, error) {
	decoded, err := Decoder(r, opts.Encoding)
	if err != nil {
		return nil, &FileAccessError{Path: name, Err: err}
	}

	records, err := Parse(decoded, opts)
	if err != nil {
		return nil, &FileAccessError{Path: name, Err: err}
	}

	log.Debugf("parsed report %s: records=%d", name, len(records))
	return records, nil
}

// ParseFile opens the report at path, decodes it and parses it. The file is
// closed before ParseFile returns.
func ParseFile(ctx context.Context, path string, opts Options) (record.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if info, err := os.Stat(path); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	} else if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	return ParseReader(f, path, opts)
}
