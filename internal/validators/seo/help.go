// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package seo

import "faq-scan/internal/help"

// GetCheckInfo returns standardized information about the SEO check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             CheckName,
		ShortDescription: "SEO policy checks: metadata presence, question count, phrasing",
		DetailedDescription: `The SEO check applies search-optimization policy independent of strict schema correctness.

It suggests page-level name and description metadata when absent, warns when the question count falls outside the recommended 3-10 range, and suggests more conventional question phrasing when fewer than half of the questions open with a common interrogative (what, how, when, where, why, who).

This check never raises hard issues; a document cannot become invalid for SEO reasons.`,

		Signals: []string{
			"Page-level name and description fields",
			"mainEntity entry count",
			"Question opener patterns (case-insensitive)",
		},

		Emits: []string{
			"Warnings for question counts outside the 3-10 range",
			"Suggestions for missing metadata and uncommon phrasing",
		},

		Examples: []string{
			"faq-scan --file faq.json --checks SEO",
		},
	}
}
