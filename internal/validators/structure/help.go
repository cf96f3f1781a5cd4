// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package structure

import "faq-scan/internal/help"

// GetCheckInfo returns standardized information about the structure check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             CheckName,
		ShortDescription: "Validates required fields, type literals and container shapes",
		DetailedDescription: `The Structure check verifies the shape of a FAQPage document at every nesting level: the page itself, the mainEntity list, each Question entity and its accepted Answer.

Missing required fields, wrong type literals, empty required text and wrong container shapes are hard issues that invalidate the document. Very short or very long question and answer text draws warnings. A non-canonical @context value is a warning only; a wrong @type invalidates the page.

Entities are reported by their 0-based position in mainEntity, so diagnostics point at the exact entry to fix.`,

		Signals: []string{
			"Required page fields: @context, @type, mainEntity",
			"Required entity fields: @type, name, acceptedAnswer",
			"Type literals: FAQPage, Question, Answer",
			"Question length bounds (10-200 characters)",
			"Answer length bounds (20-1000 characters)",
		},

		Emits: []string{
			"Issues for missing fields, wrong literals, empty text, wrong shapes",
			"Warnings for non-canonical @context and out-of-bounds text length",
		},

		Examples: []string{
			"faq-scan --file faq.json --checks STRUCTURE",
			"faq-scan --file faq.json --checks STRUCTURE --severity issues",
		},
	}
}
