// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"testing"

	"faq-scan/internal/core"
	"faq-scan/internal/diagnostics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() diagnostics.Report {
	return diagnostics.Report{
		Valid:       false,
		Issues:      []string{"Missing required field: @type"},
		Warnings:    []string{"Question 0: Question is very short"},
		Suggestions: []string{"Consider adding a 'name' field for the FAQ page"},
	}
}

func TestFilterReportHidesCategories(t *testing.T) {
	filtered := FilterReport(sampleReport(), map[string]bool{"issue": true})

	assert.Equal(t, []string{"Missing required field: @type"}, filtered.Issues)
	assert.Empty(t, filtered.Warnings)
	assert.Empty(t, filtered.Suggestions)
}

func TestFilterReportPreservesValidity(t *testing.T) {
	// Hiding issues from display must not flip the document to valid
	filtered := FilterReport(sampleReport(), map[string]bool{"warning": true})
	assert.False(t, filtered.Valid)
	assert.Empty(t, filtered.Issues)
}

func TestFilterReportEmptyFilterShowsAll(t *testing.T) {
	filtered := FilterReport(sampleReport(), nil)
	assert.Equal(t, sampleReport(), filtered)
}

func TestFilterFindings(t *testing.T) {
	findings := []diagnostics.Finding{
		{Severity: diagnostics.SeverityIssue, Check: "STRUCTURE", Message: "i"},
		{Severity: diagnostics.SeveritySuggestion, Check: "SEO", Message: "s"},
	}

	filtered := FilterFindings(findings, map[string]bool{"suggestion": true})
	require.Len(t, filtered, 1)
	assert.Equal(t, "s", filtered[0].Message)
}

func TestConvertReportsSummary(t *testing.T) {
	reports := []core.FileReport{
		{File: "good.json", Report: diagnostics.Report{Valid: true}},
		{File: "bad.json", Report: sampleReport()},
	}

	response := ConvertReports(reports, nil, false)

	assert.Equal(t, 2, response.Summary.TotalFiles)
	assert.Equal(t, 1, response.Summary.ValidFiles)
	assert.Equal(t, 1, response.Summary.InvalidFiles)
	require.Len(t, response.Results, 2)

	// Nil slices serialize as empty lists, not null
	assert.NotNil(t, response.Results[0].Issues)
	assert.Empty(t, response.Results[0].Issues)
}
