// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/tfctl/repdiff/internal/differ"
	"github.com/tfctl/repdiff/internal/record"
)

// Row column keys.
const (
	KeyComponent = "component"
	KeyVersion1  = "version1"
	KeySize1     = "size1"
	KeyVersion2  = "version2"
	KeySize2     = "size2"
	KeyStatus    = "status"
)

// Row statuses.
const (
	StatusRemoved = "removed"
	StatusAdded   = "added"
	StatusChanged = "changed"
)

// Column is one displayed column of a row.
type Column struct {
	Key     string
	Title   string
	Numeric bool
}

// Columns are the displayed columns of a diff row, in order.
var Columns = []Column{
	{Key: KeyComponent, Title: "Component"},
	{Key: KeyVersion1, Title: "Report 1 version"},
	{Key: KeySize1, Title: "Report 1 size", Numeric: true},
	{Key: KeyVersion2, Title: "Report 2 version"},
	{Key: KeySize2, Title: "Report 2 size", Numeric: true},
}

// BuildRows produces one row per differing name. Names only in the first
// report have a blank second side and vice versa. Blank versions are "" and
// blank sizes are nil. Rows come out in name order.
func BuildRows(first, second record.Records, result differ.Result) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, result.OnlyInFirst.Len()+result.OnlyInSecond.Len()+result.Changed.Len())

	for _, name := range result.OnlyInFirst.Sorted() {
		rows = append(rows, newRow(name, StatusRemoved, first[name], true, record.Record{}, false))
	}
	for _, name := range result.OnlyInSecond.Sorted() {
		rows = append(rows, newRow(name, StatusAdded, record.Record{}, false, second[name], true))
	}
	for _, name := range result.Changed.Sorted() {
		rows = append(rows, newRow(name, StatusChanged, first[name], true, second[name], true))
	}

	SortDataset(rows, KeyComponent)
	return rows
}

func newRow(name, status string, r1 record.Record, has1 bool, r2 record.Record, has2 bool) map[string]interface{} {
	row := map[string]interface{}{
		KeyComponent: name,
		KeyStatus:    status,
		KeyVersion1:  "",
		KeySize1:     nil,
		KeyVersion2:  "",
		KeySize2:     nil,
	}
	if has1 {
		row[KeyVersion1] = r1.Version
		row[KeySize1] = r1.Size
	}
	if has2 {
		row[KeyVersion2] = r2.Version
		row[KeySize2] = r2.Size
	}
	return row
}
