// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package google

import (
	"fmt"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"
)

// CheckName identifies this pass in findings and check selection
const CheckName = "GOOGLE"

// minRichResultsQuestions is the entity count below which a valid page is
// still unlikely to receive rich-result treatment.
const minRichResultsQuestions = 3

// Validator emulates third-party rich-result eligibility with a stricter,
// narrower rule subset than the structural pass. No network call is made; the
// rules mirror the published FAQPage requirements.
type Validator struct{}

// NewValidator creates and returns a new rich-results Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the eligibility check over a document. Wrong page type and an
// empty question list short-circuit; per-entity checks do not, so one entity
// can raise several issues.
func (v *Validator) Validate(doc schema.Document) diagnostics.GoogleReport {
	report := diagnostics.GoogleReport{Valid: true}

	if s, ok := doc.Field("@type").AsString(); !ok || s != schema.TypeFAQPage {
		report.Valid = false
		report.Issues = append(report.Issues, "Schema type not supported for rich results")
		return report
	}

	entities, _ := doc.Entities()
	if len(entities) < 1 {
		report.Valid = false
		report.Issues = append(report.Issues, "No questions found")
		return report
	}

	for i, raw := range entities {
		position := i + 1

		entity, ok := schema.ValueOf(raw).AsMapping()
		if !ok {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("Question %d is not properly formatted", position))
			continue
		}

		if s, ok := entity.Field("@type").AsString(); !ok || s != schema.TypeQuestion {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("Question %d has invalid type", position))
		}

		if name, ok := entity.Field("name").AsString(); !ok || name == "" {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("Question %d missing question text", position))
		}

		answer, isMapping := entity.Field("acceptedAnswer").AsMapping()
		answerType := ""
		if isMapping {
			answerType, _ = answer.Field("@type").AsString()
		}
		if !isMapping || answerType != schema.TypeAnswer {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("Question %d has invalid answer format", position))
		}

		answerText := ""
		if isMapping {
			answerText, _ = answer.Field("text").AsString()
		}
		if answerText == "" {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("Question %d missing answer text", position))
		}
	}

	if report.Valid && len(entities) >= minRichResultsQuestions {
		report.RichResults = true
		report.Warnings = append(report.Warnings, "Schema is eligible for rich results")
	} else {
		report.RichResults = false
		report.Warnings = append(report.Warnings, "Schema may not be eligible for rich results")
	}

	return report
}
