// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"faq-scan/internal/core"
	"faq-scan/internal/diagnostics"
	"faq-scan/internal/formatters"
	"faq-scan/internal/suppressions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor() formatters.FormatterOptions {
	return formatters.FormatterOptions{NoColor: true}
}

func TestValidDocumentOutput(t *testing.T) {
	reports := []core.FileReport{
		{File: "faq.json", Report: diagnostics.Report{Valid: true}},
	}

	out, err := NewFormatter().Format(reports, noColor())
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Schema is valid and ready for use!")
	assert.NotContains(t, out, "Issues found")
}

func TestInvalidDocumentOutput(t *testing.T) {
	reports := []core.FileReport{{
		File: "faq.json",
		Report: diagnostics.Report{
			Valid:       false,
			Issues:      []string{"Missing required field: @type"},
			Warnings:    []string{"Question 0: Question is very short"},
			Suggestions: []string{"Consider adding a 'name' field for the FAQ page"},
		},
	}}

	out, err := NewFormatter().Format(reports, noColor())
	require.NoError(t, err)

	assert.Contains(t, out, "❌ Schema has validation errors")
	assert.Contains(t, out, "🚨 Issues found:")
	assert.Contains(t, out, "  • Missing required field: @type")
	assert.Contains(t, out, "⚠️ Warnings:")
	assert.Contains(t, out, "💡 Suggestions:")
}

func TestSeverityFilterHidesCategories(t *testing.T) {
	reports := []core.FileReport{{
		File: "faq.json",
		Report: diagnostics.Report{
			Valid:       false,
			Issues:      []string{"Missing required field: @type"},
			Suggestions: []string{"Consider adding a 'name' field for the FAQ page"},
		},
	}}

	options := noColor()
	options.Severities = map[string]bool{"issue": true}

	out, err := NewFormatter().Format(reports, options)
	require.NoError(t, err)

	assert.Contains(t, out, "Issues found")
	assert.NotContains(t, out, "Suggestions")
	// Validity still reflects the unfiltered report
	assert.Contains(t, out, "❌")
}

func TestVerboseShowsCheckNames(t *testing.T) {
	reports := []core.FileReport{{
		File:   "faq.json",
		Report: diagnostics.Report{Valid: true, Warnings: []string{"w"}},
		Findings: []diagnostics.Finding{
			{Severity: diagnostics.SeverityWarning, Check: "CONTENT", Message: "Duplicate questions found"},
		},
	}}

	options := noColor()
	options.Verbose = true

	out, err := NewFormatter().Format(reports, options)
	require.NoError(t, err)
	assert.Contains(t, out, "[CONTENT] warning: Duplicate questions found")
}

func TestShowSuppressed(t *testing.T) {
	reports := []core.FileReport{{
		File:   "faq.json",
		Report: diagnostics.Report{Valid: true},
		Suppressed: []suppressions.SuppressedFinding{{
			Finding: diagnostics.Finding{
				Severity: diagnostics.SeverityWarning,
				Check:    "STRUCTURE",
				Message:  "Question 0: Question is very short",
			},
			File:         "faq.json",
			SuppressedBy: "SUP-00000001",
			RuleReason:   "known short question",
		}},
	}}

	options := noColor()
	options.ShowSuppressed = true

	out, err := NewFormatter().Format(reports, options)
	require.NoError(t, err)
	assert.Contains(t, out, "[SUPP SUP-00000001]")
	assert.Contains(t, out, "known short question")

	// Hidden without the flag
	out, err = NewFormatter().Format(reports, noColor())
	require.NoError(t, err)
	assert.NotContains(t, out, "SUP-00000001")
}

func TestGoogleReportRendering(t *testing.T) {
	reports := []core.FileReport{{
		File:   "faq.json",
		Report: diagnostics.Report{Valid: true},
		Google: &diagnostics.GoogleReport{
			Valid:       true,
			RichResults: true,
			Warnings:    []string{"Schema is eligible for rich results"},
		},
	}}

	out, err := NewFormatter().Format(reports, noColor())
	require.NoError(t, err)
	assert.Contains(t, out, "Google rich results check:")
	assert.Contains(t, out, "✅ Passes rich results requirements")
	assert.Contains(t, out, "Eligible for rich results display")
}

func TestMultiFileSummary(t *testing.T) {
	reports := []core.FileReport{
		{File: "a.json", Report: diagnostics.Report{Valid: true}},
		{File: "b.json", Report: diagnostics.Report{Valid: false, Issues: []string{"i"}}},
	}

	out, err := NewFormatter().Format(reports, noColor())
	require.NoError(t, err)

	assert.Contains(t, out, "=== a.json ===")
	assert.Contains(t, out, "=== b.json ===")
	assert.Contains(t, out, "Scanned 2 files: 1 valid, 1 invalid")
}

func TestNoColorOutputHasNoEscapes(t *testing.T) {
	reports := []core.FileReport{
		{File: "faq.json", Report: diagnostics.Report{Valid: false, Issues: []string{"i"}}},
	}

	out, err := NewFormatter().Format(reports, noColor())
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "\x1b["))
}
