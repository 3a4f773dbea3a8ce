// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultSeparator groups thousands in displayed sizes.
const DefaultSeparator = "'"

// FormatSize renders size with thousands grouped by sep, e.g. 1234567 with
// "'" is "1'234'567".
func FormatSize(size int64, sep string) string {
	return strings.ReplaceAll(humanize.Comma(size), ",", sep)
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// displayCells returns the row's values for columns with sizes grouped by
// sep. Blank values render as "".
func displayCells(row map[string]interface{}, columns []Column, sep string) []string {
	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		switch v := row[col.Key].(type) {
		case int64:
			cells = append(cells, FormatSize(v, sep))
		case nil:
			cells = append(cells, "")
		default:
			cells = append(cells, fmt.Sprintf("%v", v))
		}
	}
	return cells
}

// titles returns the column titles in order.
func titles(columns []Column) []string {
	t := make([]string, 0, len(columns))
	for _, col := range columns {
		t = append(t, col.Title)
	}
	return t
}
