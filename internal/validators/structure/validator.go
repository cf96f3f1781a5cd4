// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package structure

import (
	"strings"
	"unicode/utf8"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"
)

// CheckName identifies this pass in findings and check selection
const CheckName = "STRUCTURE"

// Question and answer length bounds. Text outside these bounds draws a
// warning, never an issue. Comparisons are strict.
const (
	minQuestionLength = 10
	maxQuestionLength = 200
	minAnswerLength   = 20
	maxAnswerLength   = 1000
)

// Validator checks presence, type literals and container shapes at every
// nesting level of a FAQPage document: page, mainEntity list, Question
// entities and their accepted Answers. Missing or empty required text is a
// hard issue; a non-canonical @context is only a warning.
type Validator struct {
	requiredFields       []string
	requiredEntityFields []string
}

// NewValidator creates and returns a new structural Validator instance
func NewValidator() *Validator {
	return &Validator{
		requiredFields:       []string{"@context", "@type", "mainEntity"},
		requiredEntityFields: []string{"@type", "name", "acceptedAnswer"},
	}
}

// Validate runs the structural pass over a document. It is a pure function of
// its input and never panics on malformed shapes.
func (v *Validator) Validate(doc schema.Document) diagnostics.PartialReport {
	var report diagnostics.PartialReport

	for _, field := range v.requiredFields {
		if !doc.Field(field).Present() {
			report.AddIssue("Missing required field: %s", field)
		}
	}

	if ctx := doc.Field("@context"); ctx.Present() {
		if s, ok := ctx.AsString(); !ok || s != schema.ContextURL {
			report.AddWarning("@context should be '%s'", schema.ContextURL)
		}
	}

	if typ := doc.Field("@type"); typ.Present() {
		if s, ok := typ.AsString(); !ok || s != schema.TypeFAQPage {
			report.AddIssue("@type must be '%s'", schema.TypeFAQPage)
		}
	}

	if main := doc.Field("mainEntity"); main.Present() {
		entities, ok := main.AsSequence()
		switch {
		case !ok:
			report.AddIssue("mainEntity must be a list")
		case len(entities) == 0:
			report.AddIssue("mainEntity cannot be empty")
		default:
			for i, entity := range entities {
				report.Fold(v.validateQuestionEntity(i, entity))
			}
		}
	}

	return report
}

// validateQuestionEntity checks a single mainEntity element at its 0-based
// positional index. A non-object element degrades to one issue for that index.
func (v *Validator) validateQuestionEntity(index int, raw any) diagnostics.PartialReport {
	var report diagnostics.PartialReport

	entity, ok := schema.ValueOf(raw).AsMapping()
	if !ok {
		report.AddIssue("Question %d: entity must be an object", index)
		return report
	}

	for _, field := range v.requiredEntityFields {
		if !entity.Field(field).Present() {
			report.AddIssue("Question %d: Missing required field '%s'", index, field)
		}
	}

	if typ := entity.Field("@type"); typ.Present() {
		if s, ok := typ.AsString(); !ok || s != schema.TypeQuestion {
			report.AddIssue("Question %d: @type must be '%s'", index, schema.TypeQuestion)
		}
	}

	if name := entity.Field("name"); name.Present() {
		s, isString := name.AsString()
		switch {
		case !isString || strings.TrimSpace(s) == "":
			report.AddIssue("Question %d: 'name' must be a non-empty string", index)
		case utf8.RuneCountInString(s) < minQuestionLength:
			report.AddWarning("Question %d: Question is very short", index)
		case utf8.RuneCountInString(s) > maxQuestionLength:
			report.AddWarning("Question %d: Question is very long", index)
		}
	}

	if accepted := entity.Field("acceptedAnswer"); accepted.Present() {
		answer, isMapping := accepted.AsMapping()
		if !isMapping {
			report.AddIssue("Question %d: acceptedAnswer must be an object", index)
			return report
		}

		if s, ok := answer.Field("@type").AsString(); !ok || s != schema.TypeAnswer {
			report.AddIssue("Question %d: acceptedAnswer @type must be '%s'", index, schema.TypeAnswer)
		}

		text := answer.Field("text")
		if !text.Present() {
			report.AddIssue("Question %d: acceptedAnswer missing 'text' field", index)
			return report
		}

		s, isString := text.AsString()
		switch {
		case !isString || strings.TrimSpace(s) == "":
			report.AddIssue("Question %d: acceptedAnswer text must be non-empty", index)
		case utf8.RuneCountInString(s) < minAnswerLength:
			report.AddWarning("Question %d: Answer is very short", index)
		case utf8.RuneCountInString(s) > maxAnswerLength:
			report.AddWarning("Question %d: Answer is very long", index)
		}
	}

	return report
}
