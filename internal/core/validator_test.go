// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity(name, answer string) map[string]any {
	return map[string]any{
		"@type": "Question",
		"name":  name,
		"acceptedAnswer": map[string]any{
			"@type": "Answer",
			"text":  answer,
		},
	}
}

func wellFormedDoc() schema.Document {
	return schema.Document{
		"@context":    "https://schema.org",
		"@type":       "FAQPage",
		"name":        "Store FAQ",
		"description": "Common questions about the store",
		"mainEntity": []any{
			entity("What is the return policy?", "Items can be returned within 30 days of purchase for a full refund."),
			entity("How do I track my order?", "Use the tracking link in your shipping confirmation email to follow delivery."),
			entity("Where do you ship?", "We ship to most countries worldwide, with free shipping over fifty dollars."),
		},
	}
}

func TestValidateWellFormedDocument(t *testing.T) {
	report := NewSchemaValidator().Validate(wellFormedDoc())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Suggestions)
}

func TestValidateEmptyDocument(t *testing.T) {
	report := NewSchemaValidator().Validate(schema.Document{})

	assert.False(t, report.Valid)
	assert.Contains(t, report.Issues, "Missing required field: @context")
	assert.Contains(t, report.Issues, "Missing required field: @type")
	assert.Contains(t, report.Issues, "Missing required field: mainEntity")
}

func TestValidateNeverPanicsOnHostileShapes(t *testing.T) {
	docs := []schema.Document{
		nil,
		{"@context": nil, "@type": nil, "mainEntity": nil},
		{"mainEntity": []any{nil, 42.0, []any{}, map[string]any{"acceptedAnswer": []any{}}}},
		{"@type": map[string]any{}, "mainEntity": map[string]any{}},
	}

	validator := NewSchemaValidator()
	for _, doc := range docs {
		report := validator.Validate(doc)
		assert.False(t, report.Valid)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	validator := NewSchemaValidator()
	doc := schema.Document{"@type": "WebPage", "mainEntity": []any{"bad"}}

	first := validator.Validate(doc)
	second := validator.Validate(doc)
	assert.Equal(t, first, second)
}

func TestValidityReflectsIssuesOnly(t *testing.T) {
	doc := wellFormedDoc()
	doc["@context"] = "http://schema.org"
	delete(doc, "description")

	report := NewSchemaValidator().Validate(doc)
	assert.True(t, report.Valid)
	assert.NotEmpty(t, report.Warnings)
	assert.NotEmpty(t, report.Suggestions)
}

func TestValidateChecksSelection(t *testing.T) {
	// Empty document: structure raises issues, SEO raises a warning
	doc := schema.Document{}
	validator := NewSchemaValidator()

	report, findings := validator.ValidateChecks(doc, map[string]bool{"SEO": true})
	assert.Empty(t, report.Issues)
	assert.True(t, report.Valid)
	require.NotEmpty(t, findings)
	for _, finding := range findings {
		assert.Equal(t, "SEO", finding.Check)
	}
}

func TestValidateChecksNilRunsAll(t *testing.T) {
	_, findings := NewSchemaValidator().ValidateChecks(schema.Document{}, nil)

	checks := map[string]bool{}
	for _, finding := range findings {
		checks[finding.Check] = true
	}
	assert.True(t, checks["STRUCTURE"])
	assert.True(t, checks["SEO"])
}

func TestValidateChecksFindingsMatchReport(t *testing.T) {
	doc := wellFormedDoc()
	doc["@type"] = "WebPage"

	report, findings := NewSchemaValidator().ValidateChecks(doc, nil)
	rebuilt := diagnostics.ReportFromFindings(findings)
	assert.Equal(t, report, rebuilt)
}

func TestValidateWithGoogle(t *testing.T) {
	report := NewSchemaValidator().ValidateWithGoogle(wellFormedDoc())

	assert.True(t, report.Valid)
	assert.True(t, report.RichResults)
}

func TestValidateWithGoogleIndependentOfStandardReport(t *testing.T) {
	// SEO-clean but Google-ineligible: fewer than three questions
	doc := wellFormedDoc()
	doc["mainEntity"] = []any{
		entity("What is the return policy?", "Items can be returned within 30 days of purchase for a full refund."),
	}

	validator := NewSchemaValidator()
	standard := validator.Validate(doc)
	google := validator.ValidateWithGoogle(doc)

	assert.True(t, standard.Valid)
	assert.False(t, google.RichResults)
}

func TestReferenceURLs(t *testing.T) {
	validator := NewSchemaValidator()
	assert.Equal(t, "https://search.google.com/test/rich-results", validator.GoogleTestURL())
	assert.Equal(t, "https://schema.org/FAQPage", validator.SchemaReferenceURL())
}
