// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package seo

import (
	"fmt"
	"testing"

	"faq-scan/internal/schema"

	"github.com/stretchr/testify/assert"
)

func entity(name string) map[string]any {
	return map[string]any{
		"@type": "Question",
		"name":  name,
		"acceptedAnswer": map[string]any{
			"@type": "Answer",
			"text":  "A reasonably detailed answer to the question above.",
		},
	}
}

func docWithQuestions(names ...string) schema.Document {
	entities := make([]any, 0, len(names))
	for _, name := range names {
		entities = append(entities, entity(name))
	}
	return schema.Document{
		"@context":    "https://schema.org",
		"@type":       "FAQPage",
		"name":        "Store FAQ",
		"description": "Common questions about the store",
		"mainEntity":  entities,
	}
}

func TestMissingMetadataSuggestions(t *testing.T) {
	doc := docWithQuestions("What is A?", "What is B?", "How is C?")
	delete(doc, "name")
	delete(doc, "description")

	report := NewValidator().Validate(doc)
	assert.Contains(t, report.Suggestions, "Consider adding a 'name' field for the FAQ page")
	assert.Contains(t, report.Suggestions, "Consider adding a 'description' field for better SEO")
}

func TestMetadataPresentNoSuggestions(t *testing.T) {
	doc := docWithQuestions("What is A?", "How is B?", "Where is C?")

	report := NewValidator().Validate(doc)
	assert.Empty(t, report.Suggestions)
	assert.Empty(t, report.Warnings)
}

func TestTooFewQuestions(t *testing.T) {
	doc := docWithQuestions("What is A?", "How is B?")

	report := NewValidator().Validate(doc)
	assert.Contains(t, report.Warnings, "FAQ pages should have at least 3 questions for best SEO results")
}

func TestTooManyQuestions(t *testing.T) {
	names := make([]string, 11)
	for i := range names {
		names[i] = fmt.Sprintf("What is item %d?", i)
	}
	doc := docWithQuestions(names...)

	report := NewValidator().Validate(doc)
	assert.Contains(t, report.Warnings, "Consider limiting to 10 questions to avoid overwhelming users")
}

func TestQuestionCountBoundsInclusive(t *testing.T) {
	three := docWithQuestions("What is A?", "How is B?", "Where is C?")
	assert.Empty(t, NewValidator().Validate(three).Warnings)

	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("What is item %d?", i)
	}
	ten := docWithQuestions(names...)
	assert.Empty(t, NewValidator().Validate(ten).Warnings)
}

func TestNoMainEntityWarnsTooFew(t *testing.T) {
	doc := schema.Document{"name": "FAQ", "description": "d"}

	report := NewValidator().Validate(doc)
	assert.Contains(t, report.Warnings, "FAQ pages should have at least 3 questions for best SEO results")
}

func TestUncommonQuestionPatterns(t *testing.T) {
	doc := docWithQuestions(
		"Is shipping free?",
		"Can I return items?",
		"Do you ship abroad?",
	)

	report := NewValidator().Validate(doc)
	assert.Contains(t, report.Suggestions, "Consider using more common question patterns (What, How, When, etc.)")
}

func TestPatternMatchingIsCaseInsensitive(t *testing.T) {
	doc := docWithQuestions(
		"WHAT is shipping?",
		"how do I pay?",
		"Where is my order?",
	)

	report := NewValidator().Validate(doc)
	assert.NotContains(t, report.Suggestions, "Consider using more common question patterns (What, How, When, etc.)")
}

func TestHalfCoverageIsEnough(t *testing.T) {
	doc := docWithQuestions(
		"What is shipping?",
		"How do I pay?",
		"Is there a warranty?",
		"Can I cancel?",
	)

	report := NewValidator().Validate(doc)
	assert.NotContains(t, report.Suggestions, "Consider using more common question patterns (What, How, When, etc.)")
}
