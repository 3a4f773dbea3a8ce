// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/repdiff/internal/config"
	"github.com/tfctl/repdiff/internal/differ"
	"github.com/tfctl/repdiff/internal/filters"
	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/record"
)

// NoDifferences is printed by the text and delta outputs when the reports
// hold the same records.
const NoDifferences = "No differences found between the reports."

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
	FormatDelta = "delta"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatDelta}

// Options control how a comparison is rendered.
type Options struct {
	Format    string
	Filter    string
	Sort      string
	Separator string
	Color     bool
	Titles    bool
	Padding   int
}

func (o Options) separator() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

// Rows builds, filters and sorts the rows of a comparison per opts.
func Rows(first, second record.Records, result differ.Result, opts Options) []map[string]interface{} {
	rows := BuildRows(first, second, result)
	rows = filters.FilterRows(rows, opts.Filter)
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	if opts.Sort != "" {
		SortDataset(rows, opts.Sort)
	}
	log.Debugf("rows: %d of %d differing names", len(rows),
		result.OnlyInFirst.Len()+result.OnlyInSecond.Len()+result.Changed.Len())
	return rows
}

// SliceDiceSpit renders a comparison to w in the format named by opts. If w is
// nil, os.Stdout is used.
func SliceDiceSpit(w io.Writer, first, second record.Records, result differ.Result, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	if opts.Format == FormatDelta {
		delta, err := differ.Delta(first, second, opts.Color)
		if err != nil {
			return err
		}
		if delta == "" {
			_, err = fmt.Fprintln(w, NoDifferences)
			return err
		}
		_, err = io.WriteString(w, delta)
		return err
	}

	rows := Rows(first, second, result, opts)

	switch opts.Format {
	case FormatJSON:
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
		return WriteCSV(w, rows, opts.separator())
	case FormatText, "":
		if result.Empty() {
			_, err := fmt.Fprintln(w, NoDifferences)
			return err
		}
		TableWriter(w, Columns, rows, opts)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// WriteCSV writes diff rows as semicolon-delimited CSV with a header row.
// Sizes are grouped by sep as they are on screen.
func WriteCSV(w io.Writer, rows []map[string]interface{}, sep string) error {
	return writeCSV(w, Columns, rows, sep)
}

func writeCSV(w io.Writer, columns []Column, rows []map[string]interface{}, sep string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(titles(columns)); err != nil {
		return err
	}

	for _, row := range rows {
		if err := cw.Write(displayCells(row, columns, sep)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the CSV rendering of rows to path, replacing any existing
// file.
func SaveCSV(path string, rows []map[string]interface{}, sep string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	if err := WriteCSV(f, rows, sep); err != nil {
		_ = f.Close()
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	log.Debugf("saved %d rows to %s", len(rows), path)
	return f.Close()
}

// TableWriter renders rows in a tabular form honoring color, titles and
// padding options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(w io.Writer, columns []Column, rows []map[string]interface{}, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, displayCells(row, columns, opts.separator()))
	}

	pad := opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col < len(columns) && columns[col].Numeric {
				style = style.Align(lipgloss.Right)
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(titles(columns)...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering. Each color
// defaults on terminal background so output stays readable on light and dark
// themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
