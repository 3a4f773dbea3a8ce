// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the OEM code page the reports are written in.
const DefaultEncoding = "cp866"

var encodings = map[string]encoding.Encoding{
	"cp866":        charmap.CodePage866,
	"ibm866":       charmap.CodePage866,
	"oem":          charmap.CodePage866,
	"cp1251":       charmap.Windows1251,
	"windows-1251": charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
}

// Encodings returns the accepted encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupEncoding resolves an encoding name case-insensitively. An empty name
// selects DefaultEncoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (use one of %s)", name, strings.Join(Encodings(), ", "))
	}
	return enc, nil
}

// Decoder wraps r so that it yields UTF-8 text decoded from the named
// encoding.
func Decoder(r io.Reader, name string) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
