// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"faq-scan/internal/core"
	"faq-scan/internal/diagnostics"
	"faq-scan/internal/formatters"
	"faq-scan/internal/formatters/shared"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable validation summaries with colored severity markers"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(reports []core.FileReport, options formatters.FormatterOptions) (string, error) {
	prevNoColor := color.NoColor
	if options.NoColor {
		color.NoColor = true
	}
	defer func() { color.NoColor = prevNoColor }()

	issueColor := color.New(color.FgRed)
	warningColor := color.New(color.FgYellow)
	suggestionColor := color.New(color.FgCyan)
	validColor := color.New(color.FgGreen, color.Bold)
	invalidColor := color.New(color.FgRed, color.Bold)
	fileColor := color.New(color.Bold)
	dimColor := color.New(color.Faint)

	var b strings.Builder

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		if len(reports) > 1 || report.File != "" {
			b.WriteString(fileColor.Sprintf("=== %s ===\n", report.File))
		}

		filtered := shared.FilterReport(report.Report, options.Severities)

		if filtered.Valid {
			b.WriteString(validColor.Sprint("✅ Schema is valid and ready for use!"))
			b.WriteString("\n")
		} else {
			b.WriteString(invalidColor.Sprint("❌ Schema has validation errors"))
			b.WriteString("\n")
		}

		writeBlock(&b, "🚨 Issues found:", filtered.Issues, issueColor)
		writeBlock(&b, "⚠️ Warnings:", filtered.Warnings, warningColor)
		writeBlock(&b, "💡 Suggestions:", filtered.Suggestions, suggestionColor)

		if options.Verbose && len(report.Findings) > 0 {
			visible := shared.FilterFindings(report.Findings, options.Severities)
			if len(visible) > 0 {
				b.WriteString("\nFindings by check:\n")
				for _, finding := range visible {
					b.WriteString(fmt.Sprintf("  [%s] %s: %s\n", finding.Check, finding.Severity, finding.Message))
				}
			}
		}

		if options.ShowSuppressed && len(report.Suppressed) > 0 {
			b.WriteString("\nSuppressed findings:\n")
			for _, suppressed := range report.Suppressed {
				b.WriteString(dimColor.Sprintf("  [SUPP %s] %s: %s",
					suppressed.SuppressedBy, suppressed.Finding.Severity, suppressed.Finding.Message))
				if suppressed.RuleReason != "" {
					b.WriteString(dimColor.Sprintf(" (%s)", suppressed.RuleReason))
				}
				b.WriteString("\n")
			}
		}

		if report.Google != nil {
			writeGoogleReport(&b, report.Google, issueColor, warningColor, validColor, invalidColor)
		}
	}

	if len(reports) > 1 {
		b.WriteString("\n")
		b.WriteString(summaryLine(reports))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func writeBlock(b *strings.Builder, heading string, items []string, c *color.Color) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(c.Sprintf("  • %s", item))
		b.WriteString("\n")
	}
}

func writeGoogleReport(b *strings.Builder, report *diagnostics.GoogleReport, issueColor, warningColor, validColor, invalidColor *color.Color) {
	b.WriteString("\nGoogle rich results check:\n")

	if report.Valid {
		b.WriteString(validColor.Sprint("  ✅ Passes rich results requirements"))
	} else {
		b.WriteString(invalidColor.Sprint("  ❌ Does not meet rich results requirements"))
	}
	b.WriteString("\n")

	for _, issue := range report.Issues {
		b.WriteString(issueColor.Sprintf("  • %s", issue))
		b.WriteString("\n")
	}
	for _, warning := range report.Warnings {
		b.WriteString(warningColor.Sprintf("  • %s", warning))
		b.WriteString("\n")
	}

	if report.RichResults {
		b.WriteString("  Eligible for rich results display\n")
	}
}

func summaryLine(reports []core.FileReport) string {
	valid := 0
	for _, report := range reports {
		if report.Report.Valid {
			valid++
		}
	}
	return fmt.Sprintf("Scanned %d files: %d valid, %d invalid", len(reports), valid, len(reports)-valid)
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
