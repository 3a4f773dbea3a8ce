// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package parser extracts component records from inventory reports. A report
// is a legacy-encoded text file where some lines describe installed
// components and others describe loaded modules; everything else is noise.
// Each recognised line shape is an ordered, named matcher and the first
// enabled shape that matches a line wins.
package parser
