// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"faq-scan/internal/core"
	"faq-scan/internal/formatters"
	"faq-scan/internal/formatters/shared"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(reports []core.FileReport, options formatters.FormatterOptions) (string, error) {
	response := shared.ConvertReports(reports, options.Severities, options.ShowSuppressed)

	// Single-file scans serialize the bare result so the output matches the
	// report shape produced by library use.
	var payload any = response
	if len(response.Results) == 1 {
		payload = response.Results[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON output: %w", err)
	}

	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
