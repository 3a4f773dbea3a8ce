// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the three-way difference between two parsed reports
// and renders a structural delta of them. It also hosts the interactive
// picker used to choose two reports from a folder.
package differ
