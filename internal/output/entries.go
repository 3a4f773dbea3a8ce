// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/repdiff/internal/filters"
	"github.com/tfctl/repdiff/internal/parser"
)

// NoEntries is printed by the text output when a report has no recognised
// lines.
const NoEntries = "No recognised lines in the report."

// EntryColumns are the displayed columns of a parsed report line.
var EntryColumns = []Column{
	{Key: "name", Title: "Name"},
	{Key: "kind", Title: "Kind"},
	{Key: "version", Title: "Version"},
	{Key: "size", Title: "Size", Numeric: true},
	{Key: "path", Title: "Path"},
}

// EntryRows converts parsed lines to rows, keeping file order.
func EntryRows(entries []parser.Entry) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]interface{}{
			"name":    e.Name,
			"kind":    string(e.Kind),
			"version": e.Version,
			"size":    e.Size,
			"path":    e.Path,
		})
	}
	return rows
}

// SpitEntries renders the lines recognised in one report to w. If w is nil,
// os.Stdout is used.
func SpitEntries(w io.Writer, entries []parser.Entry, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	rows := filters.FilterRows(EntryRows(entries), opts.Filter)
	SortDataset(rows, opts.Sort)

	switch opts.Format {
	case FormatJSON:
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case FormatYAML:
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case FormatCSV:
		return writeCSV(w, EntryColumns, rows, opts.separator())
	case FormatText, "":
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, NoEntries)
			return err
		}
		TableWriter(w, EntryColumns, rows, opts)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}
