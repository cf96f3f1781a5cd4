// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"faq-scan/internal/core"
	"faq-scan/internal/formatters"
	"faq-scan/internal/formatters/shared"
)

// Formatter implements CSV output formatting, one row per finding
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values with one row per finding, for spreadsheets"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(reports []core.FileReport, options formatters.FormatterOptions) (string, error) {
	var b strings.Builder
	writer := csv.NewWriter(&b)

	header := []string{"file", "valid", "severity", "check", "message"}
	if options.ShowSuppressed {
		header = append(header, "suppressed_by")
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, report := range reports {
		valid := strconv.FormatBool(report.Report.Valid)

		for _, finding := range shared.FilterFindings(report.Findings, options.Severities) {
			row := []string{report.File, valid, string(finding.Severity), finding.Check, finding.Message}
			if options.ShowSuppressed {
				row = append(row, "")
			}
			if err := writer.Write(row); err != nil {
				return "", fmt.Errorf("failed to write CSV row: %w", err)
			}
		}

		if options.ShowSuppressed {
			for _, suppressed := range report.Suppressed {
				row := []string{
					report.File,
					valid,
					string(suppressed.Finding.Severity),
					suppressed.Finding.Check,
					suppressed.Finding.Message,
					suppressed.SuppressedBy,
				}
				if err := writer.Write(row); err != nil {
					return "", fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
