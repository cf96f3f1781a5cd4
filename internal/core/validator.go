// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"
	"faq-scan/internal/validators/content"
	"faq-scan/internal/validators/google"
	"faq-scan/internal/validators/seo"
	"faq-scan/internal/validators/structure"
)

// SchemaValidator runs the validation passes over a parsed document and
// assembles the combined report. It holds no per-document state and is safe
// for reuse across files.
type SchemaValidator struct {
	structure *structure.Validator
	content   *content.Validator
	seo       *seo.Validator
	google    *google.Validator

	googleTestURL string
	schemaOrgURL  string
}

// NewSchemaValidator creates a validator with all passes enabled
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		structure:     structure.NewValidator(),
		content:       content.NewValidator(),
		seo:           seo.NewValidator(),
		google:        google.NewValidator(),
		googleTestURL: "https://search.google.com/test/rich-results",
		schemaOrgURL:  "https://schema.org/FAQPage",
	}
}

// GoogleTestURL returns the manual rich-results testing tool URL
func (v *SchemaValidator) GoogleTestURL() string {
	return v.googleTestURL
}

// SchemaReferenceURL returns the FAQPage schema documentation URL
func (v *SchemaValidator) SchemaReferenceURL() string {
	return v.schemaOrgURL
}

// runPass executes one validation pass, converting a panic into a single
// hard issue so one misbehaving pass cannot take down the whole run.
func runPass(pass func() diagnostics.PartialReport) (partial diagnostics.PartialReport) {
	defer func() {
		if r := recover(); r != nil {
			partial = diagnostics.PartialReport{}
			partial.AddIssue("Validation error: %v", r)
		}
	}()
	return pass()
}

// Validate runs all standard passes and returns the combined report
func (v *SchemaValidator) Validate(doc schema.Document) diagnostics.Report {
	report, _ := v.ValidateChecks(doc, nil)
	return report
}

// ValidateChecks runs the selected passes in fixed order (structure, content,
// SEO) and returns both the combined report and per-check findings. A nil or
// empty selection runs every pass.
func (v *SchemaValidator) ValidateChecks(doc schema.Document, enabled map[string]bool) (diagnostics.Report, []diagnostics.Finding) {
	var report diagnostics.Report
	var findings []diagnostics.Finding

	passes := []struct {
		name string
		run  func(schema.Document) diagnostics.PartialReport
	}{
		{structure.CheckName, v.structure.Validate},
		{content.CheckName, v.content.Validate},
		{seo.CheckName, v.seo.Validate},
	}

	for _, pass := range passes {
		if len(enabled) > 0 && !enabled[pass.name] {
			continue
		}
		partial := runPass(func() diagnostics.PartialReport {
			return pass.run(doc)
		})
		report.Merge(partial)
		findings = append(findings, diagnostics.Findings(pass.name, partial)...)
	}

	report.Finalize()
	return report, findings
}

// ValidateWithGoogle runs the rich-results eligibility check. Its report is
// independent of the standard validation report.
func (v *SchemaValidator) ValidateWithGoogle(doc schema.Document) diagnostics.GoogleReport {
	var report diagnostics.GoogleReport

	func() {
		defer func() {
			if r := recover(); r != nil {
				report = diagnostics.GoogleReport{
					Issues: []string{fmt.Sprintf("Validation error: %v", r)},
				}
			}
		}()
		report = v.google.Validate(doc)
	}()

	return report
}
