// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/repdiff/internal/output"
	"github.com/tfctl/repdiff/internal/parser"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations that no single flag validator
// can see. At least one line shape must be enabled.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return parserOptions(c).Validate()
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// EncodingValidator accepts the code page names the parser can decode.
func EncodingValidator(value any) error {
	s, _ := value.(string)
	if _, err := parser.LookupEncoding(s); err != nil {
		return err
	}
	return nil
}

// ListOutputValidator restricts parse to the outputs that make sense for a
// single report.
func ListOutputValidator(value any) error {
	allowed := []string{output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatCSV}
	s, _ := value.(string)
	if !slices.Contains(allowed, s) {
		return fmt.Errorf("must be one of %v", allowed)
	}
	return nil
}

// parserOptions collects the shape and encoding flags.
func parserOptions(c *cli.Command) parser.Options {
	return parser.Options{
		Components: c.Bool("components"),
		Loads:      c.Bool("loads"),
		Encoding:   c.String("encoding"),
	}
}
