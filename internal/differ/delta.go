// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/repdiff/internal/log"
	"github.com/tfctl/repdiff/internal/record"
)

// Delta renders the structural difference between two reports as an ASCII
// JSON delta. It returns "" when the reports hold the same records.
func Delta(first, second record.Records, color bool) (string, error) {
	log.Debugf(">> Delta()")

	left, err := json.Marshal(first)
	if err != nil {
		return "", fmt.Errorf("failed to marshal first report: %w", err)
	}
	right, err := json.Marshal(second)
	if err != nil {
		return "", fmt.Errorf("failed to marshal second report: %w", err)
	}

	log.Debugf("len(reports): %d %d", len(left), len(right))

	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return "", fmt.Errorf("failed to compare reports: %w", err)
	}

	if !delta.Modified() {
		return "", nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return "", fmt.Errorf("failed to unmarshal report: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	}

	return formatter.NewAsciiFormatter(jdoc, config).Format(delta)
}
