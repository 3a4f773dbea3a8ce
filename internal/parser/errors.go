// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
)

// ErrNoShapeEnabled is returned when both components and loads are disabled.
var ErrNoShapeEnabled = errors.New("nothing to compare: enable components, loads or both")

// FileAccessError is returned when a report cannot be opened, read or
// decoded. Nothing parsed from the report before the failure is returned.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read report %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
