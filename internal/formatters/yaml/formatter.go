// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"faq-scan/internal/core"
	"faq-scan/internal/formatters"
	"faq-scan/internal/formatters/shared"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Structured YAML output for configuration-style consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(reports []core.FileReport, options formatters.FormatterOptions) (string, error) {
	response := shared.ConvertReports(reports, options.Severities, options.ShowSuppressed)

	data, err := yaml.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML output: %w", err)
	}

	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
