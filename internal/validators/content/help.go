// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package content

import "faq-scan/internal/help"

// GetCheckInfo returns standardized information about the content check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             CheckName,
		ShortDescription: "Cross-entity quality checks: duplicates, diversity, answer depth",
		DetailedDescription: `The Content check looks at the question list as a whole rather than at single entities.

It flags duplicate questions (compared case-insensitively, one warning no matter how many collide), repetitive question openers when fewer than 70% of first words are distinct across three or more questions, and answers under 50 characters that are probably too thin to be useful.

This check never raises hard issues; a document cannot become invalid for content quality reasons.`,

		Signals: []string{
			"Question text across all entities",
			"First token of each question",
			"Accepted answer length per entity",
		},

		Emits: []string{
			"Warnings for duplicate questions",
			"Suggestions for starter variety and answer expansion",
		},

		Examples: []string{
			"faq-scan --file faq.json --checks CONTENT",
		},
	}
}
