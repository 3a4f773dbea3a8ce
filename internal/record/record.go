// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptyField is returned when a numeric field holds nothing but
// whitespace.
var ErrEmptyField = errors.New("field is empty")

// Record is the state of a single component as seen in one report. Version
// is either a dotted version ("1.2.3") or a load timestamp
// ("01\02\2024 10:15") and is kept verbatim. Size is the normalized integer
// size.
type Record struct {
	Version string `json:"version" yaml:"version"`
	Size    int64  `json:"size" yaml:"size"`
}

// Equal reports whether both fields match exactly.
func (r Record) Equal(other Record) bool {
	return r.Version == other.Version && r.Size == other.Size
}

// Records maps a case-sensitive component name to its Record.
type Records map[string]Record

// Names returns the keys of the map in no particular order.
func (rs Records) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	return names
}

// InvalidFieldError is returned when a field matched the line shape but could
// not be normalized.
type InvalidFieldError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// NormalizeSize strips all whitespace from a size field and parses what is
// left as a base-10 integer. "12 345" becomes 12345 and "007" becomes 7.
func NormalizeSize(text string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	if digits == "" {
		return 0, &InvalidFieldError{Field: "size", Value: text, Err: ErrEmptyField}
	}

	// ParseInt accepts a leading sign, a size never carries one.
	if digits[0] == '+' || digits[0] == '-' {
		return 0, &InvalidFieldError{Field: "size", Value: text, Err: strconv.ErrSyntax}
	}

	size, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &InvalidFieldError{Field: "size", Value: text, Err: err}
	}

	return size, nil
}
