// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package seo

import (
	"strings"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/schema"
)

// CheckName identifies this pass in findings and check selection
const CheckName = "SEO"

// Question-count bounds recommended for FAQ rich results, and the minimum
// fraction of questions expected to open with a common interrogative.
const (
	minQuestions         = 3
	maxQuestions         = 10
	patternCoverageRatio = 0.5
)

// questionPatterns are the common interrogative openers checked
// case-insensitively against each question.
var questionPatterns = []string{"what", "how", "when", "where", "why", "who"}

// Validator applies SEO policy checks independent of strict schema
// correctness: page metadata presence, question-count bounds and
// question-pattern coverage. It never raises hard issues.
type Validator struct{}

// NewValidator creates and returns a new SEO heuristics Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the SEO heuristics pass over a document
func (v *Validator) Validate(doc schema.Document) diagnostics.PartialReport {
	var report diagnostics.PartialReport

	if !doc.Field("name").Present() {
		report.AddSuggestion("Consider adding a 'name' field for the FAQ page")
	}
	if !doc.Field("description").Present() {
		report.AddSuggestion("Consider adding a 'description' field for better SEO")
	}

	count := doc.EntityCount()
	if count < minQuestions {
		report.AddWarning("FAQ pages should have at least 3 questions for best SEO results")
	} else if count > maxQuestions {
		report.AddWarning("Consider limiting to 10 questions to avoid overwhelming users")
	}

	entities, _ := doc.Entities()
	var questions []string
	for _, entity := range entities {
		if question, ok := schema.QuestionText(entity); ok {
			questions = append(questions, question)
		}
	}

	if len(questions) > 0 {
		patternCount := 0
		for _, question := range questions {
			lower := strings.ToLower(question)
			for _, pattern := range questionPatterns {
				if strings.HasPrefix(lower, pattern) {
					patternCount++
					break
				}
			}
		}
		if float64(patternCount) < float64(len(questions))*patternCoverageRatio {
			report.AddSuggestion("Consider using more common question patterns (What, How, When, etc.)")
		}
	}

	return report
}
