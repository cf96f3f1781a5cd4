// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shared holds conversion and filtering logic used by more than one
// formatter, so severity filtering behaves identically across formats.
package shared

import (
	"faq-scan/internal/core"
	"faq-scan/internal/diagnostics"
	"faq-scan/internal/suppressions"
)

// SeverityVisible reports whether a severity category passes the display
// filter. An empty filter shows everything.
func SeverityVisible(severity diagnostics.Severity, severities map[string]bool) bool {
	if len(severities) == 0 {
		return true
	}
	return severities[string(severity)]
}

// FilterReport applies the severity display filter to a report. Validity is
// left untouched: hiding issues from display never makes a document valid.
func FilterReport(r diagnostics.Report, severities map[string]bool) diagnostics.Report {
	filtered := diagnostics.Report{Valid: r.Valid}
	if SeverityVisible(diagnostics.SeverityIssue, severities) {
		filtered.Issues = r.Issues
	}
	if SeverityVisible(diagnostics.SeverityWarning, severities) {
		filtered.Warnings = r.Warnings
	}
	if SeverityVisible(diagnostics.SeveritySuggestion, severities) {
		filtered.Suggestions = r.Suggestions
	}
	return filtered
}

// FilterFindings applies the severity display filter to structured findings
func FilterFindings(findings []diagnostics.Finding, severities map[string]bool) []diagnostics.Finding {
	if len(severities) == 0 {
		return findings
	}
	var filtered []diagnostics.Finding
	for _, finding := range findings {
		if SeverityVisible(finding.Severity, severities) {
			filtered = append(filtered, finding)
		}
	}
	return filtered
}

// FileResult is the serializable per-file result shared by the JSON and YAML
// formatters.
type FileResult struct {
	File        string                           `json:"file" yaml:"file"`
	Valid       bool                             `json:"valid" yaml:"valid"`
	Issues      []string                         `json:"issues" yaml:"issues"`
	Warnings    []string                         `json:"warnings" yaml:"warnings"`
	Suggestions []string                         `json:"suggestions" yaml:"suggestions"`
	Google      *diagnostics.GoogleReport        `json:"google,omitempty" yaml:"google,omitempty"`
	Suppressed  []suppressions.SuppressedFinding `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	Error       string                           `json:"error,omitempty" yaml:"error,omitempty"`
}

// ScanSummary aggregates counts across all scanned files
type ScanSummary struct {
	TotalFiles      int `json:"total_files" yaml:"total_files"`
	ValidFiles      int `json:"valid_files" yaml:"valid_files"`
	InvalidFiles    int `json:"invalid_files" yaml:"invalid_files"`
	SuppressedCount int `json:"suppressed_count,omitempty" yaml:"suppressed_count,omitempty"`
}

// ScanResponse is the top-level serializable structure
type ScanResponse struct {
	Results []FileResult `json:"results" yaml:"results"`
	Summary ScanSummary  `json:"summary" yaml:"summary"`
}

// ConvertReports builds the serializable response from per-file reports,
// applying the severity display filter.
func ConvertReports(reports []core.FileReport, severities map[string]bool, showSuppressed bool) ScanResponse {
	response := ScanResponse{Results: []FileResult{}}

	for _, report := range reports {
		filtered := FilterReport(report.Report, severities)

		result := FileResult{
			File:        report.File,
			Valid:       filtered.Valid,
			Issues:      emptyIfNil(filtered.Issues),
			Warnings:    emptyIfNil(filtered.Warnings),
			Suggestions: emptyIfNil(filtered.Suggestions),
			Google:      report.Google,
			Error:       report.Error,
		}
		if showSuppressed {
			result.Suppressed = report.Suppressed
		}

		response.Results = append(response.Results, result)
		response.Summary.TotalFiles++
		if report.Report.Valid {
			response.Summary.ValidFiles++
		} else {
			response.Summary.InvalidFiles++
		}
		response.Summary.SuppressedCount += len(report.Suppressed)
	}

	return response
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
