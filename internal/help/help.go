// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a validation check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "STRUCTURE")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Signals             []string // Document properties the check inspects
	Emits               []string // Severity levels the check can emit
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("FAQ Scan - FAQPage JSON-LD Validation Tool")
	fmt.Println("==========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  faq-scan --file <path-to-document> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the input document, directory, or glob pattern (required)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --recursive\t\tRecursively scan directories for .json/.jsonld documents")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --checks\t<checks>\tSpecific checks to run: STRUCTURE,CONTENT,SEO,all (default: all)")
	fmt.Fprintln(w, "  --severity\t<levels>\tSeverity levels to display: issues,warnings,suggestions,all (default: all)")
	fmt.Fprintln(w, "\t\t\tNote: display filter only; document validity always reflects the full report")
	fmt.Fprintln(w, "  --google\t\tAlso run the Google rich-results eligibility check")
	fmt.Fprintln(w, "  --verbose\t\tDisplay each finding with its originating check")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of validation flow and timings")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --suppression-file\t<path>\tPath to suppression configuration file (default: .faq-scan-suppressions.yaml)")
	fmt.Fprintln(w, "  --generate-suppressions\t\tGenerate suppression rules for current warnings and suggestions")
	fmt.Fprintln(w, "  --show-suppressed\t\tInclude suppressed findings in output with suppression details")
	fmt.Fprintln(w, "  --quiet\t\tSuppress progress output (useful for scripts and CI/CD)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help checks\t\tList all available checks")
	fmt.Fprintln(w, "  --help <check>\t\tShow detailed help for a specific check")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    faq-scan --file faq.json")
	h.colors["example"].Println("    faq-scan --file faq.json --severity issues,warnings --verbose")
	fmt.Println("  Rich Results:")
	h.colors["example"].Println("    faq-scan --file faq.json --google")
	fmt.Println("  Directories and CI:")
	h.colors["example"].Println("    faq-scan --file ./pages --recursive --format json --quiet")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    faq-scan --file faq.json --config faq-scan.yaml --profile ci")
	h.colors["example"].Println("    faq-scan --list-profiles --config faq-scan.yaml")

	fmt.Println()
	h.colors["header"].Println("EXIT CODES:")
	fmt.Println("  0  All scanned documents are valid")
	fmt.Println("  1  At least one document is invalid, or an error occurred")
	fmt.Println("  2  No documents found to scan")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.faq-scan/config.yaml")
	fmt.Println("  Project config: faq-scan.yaml or .faq-scan.yaml (in current directory)")
	fmt.Println("  Environment: FAQ_SCAN_CONFIG_DIR - Override config directory")
}

// ShowChecksHelp displays information about all available checks
func (h *System) ShowChecksHelp() {
	h.colors["title"].Println("Available Checks in FAQ Scan")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("The following checks are available for validating FAQPage documents:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CHECK\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t-----------")

	var checkNames []string
	for _, provider := range h.providers {
		checkNames = append(checkNames, provider.GetCheckInfo().Name)
	}
	sort.Strings(checkNames)

	for _, checkName := range checkNames {
		info := h.providers[strings.ToLower(checkName)].GetCheckInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific check, use:")
	h.colors["example"].Println("  faq-scan --help <check>")
}

// ShowCheckHelp displays detailed help for a specific check
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Printf("Error: Check '%s' not found.\n", checkName)
		fmt.Println("Use 'faq-scan --help checks' to see a list of available checks.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s Check\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+6))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Signals) > 0 {
		h.colors["header"].Println("SIGNALS CHECKED:")
		for _, signal := range info.Signals {
			fmt.Print("  - ")
			h.colors["item"].Println(signal)
		}
		fmt.Println()
	}

	if len(info.Emits) > 0 {
		h.colors["header"].Println("EMITS:")
		for _, emits := range info.Emits {
			fmt.Print("  - ")
			h.colors["item"].Println(emits)
		}
		fmt.Println()
	}

	h.colors["header"].Println("Severity Levels:")
	fmt.Print("- ")
	h.colors["negative"].Print("ISSUE")
	fmt.Println(": Schema-invalidating defect; flips the document to invalid")
	fmt.Print("- ")
	h.colors["warning"].Print("WARNING")
	fmt.Println(": Quality concern that does not invalidate the document")
	fmt.Print("- ")
	h.colors["positive"].Print("SUGGESTION")
	fmt.Println(": Optional improvement hint")
	fmt.Println()

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
