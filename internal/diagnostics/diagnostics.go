// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"fmt"
	"strings"
)

// Severity classifies a finding. Only issues affect document validity;
// warnings and suggestions are advisory.
type Severity string

const (
	SeverityIssue      Severity = "issue"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// PartialReport is the output of a single validation pass. Passes are pure
// functions from a document to a PartialReport; the orchestrator concatenates
// them into a Report.
type PartialReport struct {
	Issues      []string
	Warnings    []string
	Suggestions []string
}

// AddIssue appends a formatted hard issue
func (p *PartialReport) AddIssue(format string, args ...any) {
	p.Issues = append(p.Issues, fmt.Sprintf(format, args...))
}

// AddWarning appends a formatted soft warning
func (p *PartialReport) AddWarning(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// AddSuggestion appends a formatted improvement suggestion
func (p *PartialReport) AddSuggestion(format string, args ...any) {
	p.Suggestions = append(p.Suggestions, fmt.Sprintf(format, args...))
}

// Fold appends another partial report's findings, preserving order
func (p *PartialReport) Fold(other PartialReport) {
	p.Issues = append(p.Issues, other.Issues...)
	p.Warnings = append(p.Warnings, other.Warnings...)
	p.Suggestions = append(p.Suggestions, other.Suggestions...)
}

// Report is the result of a full validation run. It is constructed fresh per
// call and never mutated after being returned.
type Report struct {
	Valid       bool     `json:"valid" yaml:"valid"`
	Issues      []string `json:"issues" yaml:"issues"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// Merge appends a pass's findings to the report
func (r *Report) Merge(p PartialReport) {
	r.Issues = append(r.Issues, p.Issues...)
	r.Warnings = append(r.Warnings, p.Warnings...)
	r.Suggestions = append(r.Suggestions, p.Suggestions...)
}

// Finalize derives the validity flag. Valid iff no hard issues were raised.
func (r *Report) Finalize() {
	r.Valid = len(r.Issues) == 0
}

// GoogleReport is the result of the rich-results eligibility check. It is
// independent of Report; the two modes never share state.
type GoogleReport struct {
	Valid       bool     `json:"valid" yaml:"valid"`
	Issues      []string `json:"issues" yaml:"issues"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
	RichResults bool     `json:"rich_results" yaml:"rich_results"`
}

// Finding is a structured view of a single diagnostic used by tabular
// formatters and suppressions. The message string remains the authoritative
// form of the diagnostic.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Check    string   `json:"check" yaml:"check"`
	Message  string   `json:"message" yaml:"message"`
}

// Findings expands a pass's partial report into structured findings tagged
// with the check that produced them.
func Findings(check string, p PartialReport) []Finding {
	var findings []Finding
	for _, msg := range p.Issues {
		findings = append(findings, Finding{Severity: SeverityIssue, Check: check, Message: msg})
	}
	for _, msg := range p.Warnings {
		findings = append(findings, Finding{Severity: SeverityWarning, Check: check, Message: msg})
	}
	for _, msg := range p.Suggestions {
		findings = append(findings, Finding{Severity: SeveritySuggestion, Check: check, Message: msg})
	}
	return findings
}

// ReportFromFindings rebuilds a report from structured findings, preserving
// their order within each category. Used after suppression filtering.
func ReportFromFindings(findings []Finding) Report {
	var r Report
	for _, f := range findings {
		switch f.Severity {
		case SeverityIssue:
			r.Issues = append(r.Issues, f.Message)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, f.Message)
		case SeveritySuggestion:
			r.Suggestions = append(r.Suggestions, f.Message)
		}
	}
	r.Finalize()
	return r
}

// Summary renders a human-readable validation summary: one status line, then
// a bulleted block per non-empty category.
func Summary(r Report) string {
	var parts []string

	if r.Valid {
		parts = append(parts, "✅ Schema is valid and ready for use!")
	} else {
		parts = append(parts, "❌ Schema has validation errors")
	}

	if len(r.Issues) > 0 {
		parts = append(parts, "\n🚨 Issues found:")
		for _, issue := range r.Issues {
			parts = append(parts, fmt.Sprintf("  • %s", issue))
		}
	}

	if len(r.Warnings) > 0 {
		parts = append(parts, "\n⚠️ Warnings:")
		for _, warning := range r.Warnings {
			parts = append(parts, fmt.Sprintf("  • %s", warning))
		}
	}

	if len(r.Suggestions) > 0 {
		parts = append(parts, "\n💡 Suggestions:")
		for _, suggestion := range r.Suggestions {
			parts = append(parts, fmt.Sprintf("  • %s", suggestion))
		}
	}

	return strings.Join(parts, "\n")
}
