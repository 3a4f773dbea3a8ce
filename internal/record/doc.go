// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package record holds the value observed for one component in a report: its
// version (or load timestamp) and its size.
package record
