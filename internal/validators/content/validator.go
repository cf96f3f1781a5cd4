// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"strings"
	"unicode/utf8"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"
)

// CheckName identifies this pass in findings and check selection
const CheckName = "CONTENT"

// Heuristic thresholds preserved from prior behavior rather than re-derived:
// answers under minAnswerLength runes draw an expansion suggestion, and a
// question set whose distinct first tokens fall below starterDiversityRatio
// of the population draws a variety suggestion.
const (
	minAnswerLength          = 50
	starterDiversityRatio    = 0.7
	minQuestionsForDiversity = 3
)

// Validator runs cross-entity quality checks that need the full question
// list: duplicate detection, starter diversity and answer depth. It emits
// warnings and suggestions only; structural validity is not assumed, so every
// field access is guarded.
type Validator struct{}

// NewValidator creates and returns a new content quality Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the content quality pass over a document
func (v *Validator) Validate(doc schema.Document) diagnostics.PartialReport {
	var report diagnostics.PartialReport

	entities, _ := doc.Entities()

	questions := make([]string, 0, len(entities))
	for _, entity := range entities {
		if question, ok := schema.QuestionText(entity); ok {
			questions = append(questions, question)
		}
	}

	// One warning regardless of how many pairs collide
	seen := make(map[string]struct{}, len(questions))
	for _, question := range questions {
		key := strings.ToLower(question)
		if _, dup := seen[key]; dup {
			report.AddWarning("Duplicate questions found")
			break
		}
		seen[key] = struct{}{}
	}

	if len(questions) >= minQuestionsForDiversity {
		var starters []string
		for _, question := range questions {
			if tokens := strings.Fields(question); len(tokens) > 0 {
				starters = append(starters, tokens[0])
			}
		}

		distinct := make(map[string]struct{}, len(starters))
		for _, starter := range starters {
			distinct[starter] = struct{}{}
		}

		if len(starters) > 0 && float64(len(distinct)) < float64(len(starters))*starterDiversityRatio {
			report.AddSuggestion("Consider varying question starters for better diversity")
		}
	}

	for i, entity := range entities {
		text, ok := schema.AnswerText(entity)
		if !ok {
			continue
		}
		if utf8.RuneCountInString(text) < minAnswerLength {
			report.AddSuggestion("Question %d: Consider expanding the answer for better value", i+1)
		}
	}

	return report
}
