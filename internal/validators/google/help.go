// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package google

import "faq-scan/internal/help"

// GetCheckInfo returns standardized information about the Google check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             CheckName,
		ShortDescription: "Rich-results eligibility check (strict FAQPage requirements)",
		DetailedDescription: `The Google check emulates rich-result eligibility testing with a stricter, narrower rule subset than the structural pass. No network call is made.

A wrong page type or an empty question list fails immediately. Each entity must be a well-formed Question with non-empty text and a well-formed Answer; a single entity can raise several issues. A valid page additionally needs at least 3 questions to be considered eligible for rich results, and the report carries an informational eligibility warning either way.

Run it with --google alongside the standard checks; its report is independent of the main validation report.`,

		Signals: []string{
			"Page @type literal",
			"mainEntity presence and entry count",
			"Per-entity Question/Answer shape and text",
		},

		Emits: []string{
			"Issues for every violated eligibility requirement",
			"An informational eligibility warning on every run",
		},

		Examples: []string{
			"faq-scan --file faq.json --google",
			"faq-scan --file faq.json --google --format json",
		},
	}
}
