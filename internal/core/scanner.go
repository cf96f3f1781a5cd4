// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/observability"
	"faq-scan/internal/schema"
	"faq-scan/internal/suppressions"
	"faq-scan/internal/validators/structure"

	"github.com/gobwas/glob"
)

// ScanConfig holds configuration for a scanning operation
type ScanConfig struct {
	Paths           []string
	Checks          []string
	Google          bool
	Recursive       bool
	ExcludePatterns []string
	Observer        *observability.StandardObserver
	// SuppressionManager, when non-nil, is applied to findings before the
	// per-file report is assembled. ScanResult.SuppressedCount is populated
	// accordingly.
	SuppressionManager *suppressions.SuppressionManager
	// GenerateSuppressions adds a rule for every suppressible finding instead
	// of filtering.
	GenerateSuppressions bool
}

// FileReport holds the validation outcome for one file
type FileReport struct {
	File       string                           `json:"file" yaml:"file"`
	Report     diagnostics.Report               `json:"report" yaml:"report"`
	Google     *diagnostics.GoogleReport        `json:"google,omitempty" yaml:"google,omitempty"`
	Findings   []diagnostics.Finding            `json:"findings,omitempty" yaml:"findings,omitempty"`
	Suppressed []suppressions.SuppressedFinding `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	Error      string                           `json:"error,omitempty" yaml:"error,omitempty"`
}

// ScanResult aggregates the outcome of a whole scan
type ScanResult struct {
	Reports         []FileReport
	ProcessedFiles  int
	InvalidFiles    int
	SuppressedCount int
	Errors          []error
}

// schemaExtensions are the file extensions treated as JSON-LD documents
var schemaExtensions = map[string]bool{
	".json":   true,
	".jsonld": true,
}

// ScanPaths expands the given paths into schema files and validates each one.
// Unreadable or unparseable files produce a FileReport with a single hard
// issue rather than aborting the scan.
func ScanPaths(validator *SchemaValidator, cfg ScanConfig) (*ScanResult, error) {
	files, err := expandPaths(cfg.Paths, cfg.Recursive, cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{}
	enabled := checksToSet(cfg.Checks)

	for _, file := range files {
		report := scanFile(validator, file, enabled, cfg)
		result.ProcessedFiles++
		if !report.Report.Valid {
			result.InvalidFiles++
		}
		result.SuppressedCount += len(report.Suppressed)
		if report.Error != "" {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %s", file, report.Error))
		}
		result.Reports = append(result.Reports, report)
	}

	return result, nil
}

func scanFile(validator *SchemaValidator, file string, enabled map[string]bool, cfg ScanConfig) FileReport {
	var complete func(bool, map[string]any)
	if cfg.Observer != nil {
		complete = cfg.Observer.StartTiming("scanner", "validate_file", file)
	}

	report := FileReport{File: file}

	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		report.Error = err.Error()
		report.Report = errorReport("Failed to read file: %v", err)
		report.Findings = diagnostics.Findings(structure.CheckName, diagnostics.PartialReport{Issues: report.Report.Issues})
		if complete != nil {
			complete(false, map[string]any{"error": err.Error()})
		}
		return report
	}

	doc, err := schema.ParseDocument(data)
	if err != nil {
		report.Error = err.Error()
		report.Report = errorReport("Invalid JSON: %v", err)
		report.Findings = diagnostics.Findings(structure.CheckName, diagnostics.PartialReport{Issues: report.Report.Issues})
		if complete != nil {
			complete(false, map[string]any{"error": err.Error()})
		}
		return report
	}

	fullReport, findings := validator.ValidateChecks(doc, enabled)

	if cfg.SuppressionManager != nil {
		if cfg.GenerateSuppressions {
			for _, finding := range findings {
				if finding.Severity == diagnostics.SeverityIssue {
					continue
				}
				// Already-covered findings are reported as duplicates; ignore.
				_ = cfg.SuppressionManager.AddSuppression(finding, file, "auto-generated", "faq-scan", nil)
			}
		} else {
			kept, suppressed := cfg.SuppressionManager.Apply(findings, file)
			findings = kept
			report.Suppressed = suppressed
			fullReport = diagnostics.ReportFromFindings(kept)
		}
	}

	report.Report = fullReport
	report.Findings = findings

	if cfg.Google {
		googleReport := validator.ValidateWithGoogle(doc)
		report.Google = &googleReport
	}

	if complete != nil {
		complete(true, map[string]any{
			"valid":       report.Report.Valid,
			"issues":      len(report.Report.Issues),
			"warnings":    len(report.Report.Warnings),
			"suggestions": len(report.Report.Suggestions),
		})
	}

	return report
}

func errorReport(format string, args ...any) diagnostics.Report {
	var report diagnostics.Report
	report.Issues = append(report.Issues, fmt.Sprintf(format, args...))
	report.Finalize()
	return report
}

// expandPaths resolves files, directories and glob patterns into a sorted,
// de-duplicated list of schema files.
func expandPaths(inputPaths []string, recursive bool, excludePatterns []string) ([]string, error) {
	excludes, err := compileExcludes(excludePatterns)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var files []string

	add := func(path string) {
		if seen[path] || isExcluded(path, excludes) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, inputPath := range inputPaths {
		info, statErr := os.Stat(inputPath)
		switch {
		case statErr == nil && info.IsDir():
			if err := collectDir(inputPath, recursive, add); err != nil {
				return nil, err
			}
		case statErr == nil:
			add(inputPath)
		default:
			// Not a plain path; try it as a glob pattern.
			matches, globErr := filepath.Glob(inputPath)
			if globErr != nil || len(matches) == 0 {
				return nil, fmt.Errorf("path not found: %s", inputPath)
			}
			for _, match := range matches {
				if matchInfo, err := os.Stat(match); err == nil && !matchInfo.IsDir() {
					add(match)
				}
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func collectDir(dir string, recursive bool, add func(string)) error {
	if recursive {
		return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && schemaExtensions[strings.ToLower(filepath.Ext(path))] {
				add(path)
			}
			return nil
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if schemaExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			add(filepath.Join(dir, entry.Name()))
		}
	}
	return nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func isExcluded(path string, excludes []glob.Glob) bool {
	normalized := filepath.ToSlash(path)
	for _, g := range excludes {
		if g.Match(normalized) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// ParseChecksToRun normalizes a comma-separated check selection. An empty
// value or "all" selects every standard check.
func ParseChecksToRun(checks string) []string {
	all := []string{"STRUCTURE", "CONTENT", "SEO"}

	trimmed := strings.TrimSpace(checks)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return all
	}

	valid := map[string]bool{}
	for _, name := range all {
		valid[name] = true
	}

	var selected []string
	seen := map[string]bool{}
	for _, part := range strings.Split(trimmed, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		if strings.EqualFold(name, "all") {
			return all
		}
		if valid[name] {
			seen[name] = true
			selected = append(selected, name)
		}
	}

	if len(selected) == 0 {
		return all
	}
	return selected
}

// ParseSeverityLevels normalizes a comma-separated severity display filter.
// An empty value or "all" shows every category.
func ParseSeverityLevels(severities string) map[string]bool {
	all := map[string]bool{
		string(diagnostics.SeverityIssue):      true,
		string(diagnostics.SeverityWarning):    true,
		string(diagnostics.SeveritySuggestion): true,
	}

	trimmed := strings.TrimSpace(severities)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return all
	}

	aliases := map[string]string{
		"issue":       string(diagnostics.SeverityIssue),
		"issues":      string(diagnostics.SeverityIssue),
		"warning":     string(diagnostics.SeverityWarning),
		"warnings":    string(diagnostics.SeverityWarning),
		"suggestion":  string(diagnostics.SeveritySuggestion),
		"suggestions": string(diagnostics.SeveritySuggestion),
	}

	selected := map[string]bool{}
	for _, part := range strings.Split(trimmed, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "all" {
			return all
		}
		if canonical, ok := aliases[name]; ok {
			selected[canonical] = true
		}
	}

	if len(selected) == 0 {
		return all
	}
	return selected
}

func checksToSet(checks []string) map[string]bool {
	if len(checks) == 0 {
		return nil
	}
	set := map[string]bool{}
	for _, name := range checks {
		set[strings.ToUpper(name)] = true
	}
	return set
}
