// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects diff rows with --filter expressions.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, override with REPDIFF_FILTER_DELIM). Keys name row columns:
// component, status, version1, size1, version2 and size2.
//
// Operators:
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - @ : contains substring
//   - / : regular expression match
//   - < : less than (numeric when the column is numeric)
//   - > : greater than (numeric when the column is numeric)
//
// Any operator may be negated with a leading '!'.
//
// Examples:
//
//   - "status=changed" : rows whose records differ
//   - "component^lib" : components whose name starts with "lib"
//   - "size2>1000000" : rows whose second-report size exceeds a megabyte
//   - "component!/^tmp" : components not matching the regex ^tmp
//
// A filter naming an unknown column is reported on stderr and skipped. A row
// whose column is blank (the side the name is absent from) never matches a
// filter on that column.
package filters
