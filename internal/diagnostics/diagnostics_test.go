// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialReportAdders(t *testing.T) {
	var p PartialReport
	p.AddIssue("Question %d: bad", 0)
	p.AddWarning("slow down")
	p.AddSuggestion("try %s", "harder")

	assert.Equal(t, []string{"Question 0: bad"}, p.Issues)
	assert.Equal(t, []string{"slow down"}, p.Warnings)
	assert.Equal(t, []string{"try harder"}, p.Suggestions)
}

func TestFoldPreservesOrder(t *testing.T) {
	var a, b PartialReport
	a.AddIssue("first")
	b.AddIssue("second")
	a.Fold(b)

	assert.Equal(t, []string{"first", "second"}, a.Issues)
}

func TestFinalize(t *testing.T) {
	var clean Report
	clean.Finalize()
	assert.True(t, clean.Valid)

	var dirty Report
	dirty.Merge(PartialReport{Issues: []string{"broken"}})
	dirty.Finalize()
	assert.False(t, dirty.Valid)

	// Warnings and suggestions alone never invalidate
	var advisory Report
	advisory.Merge(PartialReport{Warnings: []string{"w"}, Suggestions: []string{"s"}})
	advisory.Finalize()
	assert.True(t, advisory.Valid)
}

func TestFindings(t *testing.T) {
	p := PartialReport{
		Issues:      []string{"i1"},
		Warnings:    []string{"w1", "w2"},
		Suggestions: []string{"s1"},
	}

	findings := Findings("STRUCTURE", p)
	assert.Len(t, findings, 4)
	assert.Equal(t, Finding{Severity: SeverityIssue, Check: "STRUCTURE", Message: "i1"}, findings[0])
	assert.Equal(t, SeverityWarning, findings[1].Severity)
	assert.Equal(t, SeveritySuggestion, findings[3].Severity)
}

func TestReportFromFindings(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityWarning, Check: "CONTENT", Message: "w1"},
		{Severity: SeverityIssue, Check: "STRUCTURE", Message: "i1"},
		{Severity: SeveritySuggestion, Check: "SEO", Message: "s1"},
	}

	report := ReportFromFindings(findings)
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"i1"}, report.Issues)
	assert.Equal(t, []string{"w1"}, report.Warnings)
	assert.Equal(t, []string{"s1"}, report.Suggestions)

	empty := ReportFromFindings(nil)
	assert.True(t, empty.Valid)
}

func TestSummaryValid(t *testing.T) {
	report := Report{Valid: true}
	assert.Equal(t, "✅ Schema is valid and ready for use!", Summary(report))
}

func TestSummaryWithAllCategories(t *testing.T) {
	report := Report{
		Valid:       false,
		Issues:      []string{"Missing required field: @type"},
		Warnings:    []string{"Question 0: Question is very short"},
		Suggestions: []string{"Consider adding a 'name' field for the FAQ page"},
	}

	expected := "❌ Schema has validation errors\n" +
		"\n🚨 Issues found:\n" +
		"  • Missing required field: @type\n" +
		"\n⚠️ Warnings:\n" +
		"  • Question 0: Question is very short\n" +
		"\n💡 Suggestions:\n" +
		"  • Consider adding a 'name' field for the FAQ page"

	assert.Equal(t, expected, Summary(report))
}

func TestSummaryValidWithSuggestions(t *testing.T) {
	report := Report{
		Valid:       true,
		Suggestions: []string{"Consider adding a 'description' field for better SEO"},
	}

	expected := "✅ Schema is valid and ready for use!\n" +
		"\n💡 Suggestions:\n" +
		"  • Consider adding a 'description' field for better SEO"

	assert.Equal(t, expected, Summary(report))
}
