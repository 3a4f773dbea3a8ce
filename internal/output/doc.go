// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns a report comparison into rows and renders them as a
// table, JSON, YAML, semicolon-delimited CSV, or a structural delta.
package output
