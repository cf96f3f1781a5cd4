// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"faq-scan/internal/config"
	"faq-scan/internal/core"
	"faq-scan/internal/help"
	"faq-scan/internal/observability"
	"faq-scan/internal/suppressions"
	"faq-scan/internal/version"

	"faq-scan/internal/formatters"
	_ "faq-scan/internal/formatters/csv"
	_ "faq-scan/internal/formatters/json"
	_ "faq-scan/internal/formatters/text"
	_ "faq-scan/internal/formatters/yaml"

	"faq-scan/internal/validators/content"
	"faq-scan/internal/validators/google"
	"faq-scan/internal/validators/seo"
	"faq-scan/internal/validators/structure"

	"golang.org/x/term"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitNoInput = 2
)

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	severities   string
	checksToRun  string
	verbose      bool
	debug        bool
	noColor      bool
	recursive    bool
	google       bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format          string
	severities      string
	checksToRun     string
	verbose         bool
	debug           bool
	noColor         bool
	recursive       bool
	google          bool
	excludePatterns []string
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags, in that order of precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text"
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Severity display filter
	final.severities = "all"
	if cfg != nil && cfg.Defaults.Severities != "" {
		final.severities = cfg.Defaults.Severities
	}
	if activeProfile != nil && activeProfile.Severities != "" {
		final.severities = activeProfile.Severities
	}
	if isFlagSet("severity") && flags.severities != "" {
		final.severities = flags.severities
	}

	// Checks to run
	final.checksToRun = "all"
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checksToRun = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checksToRun = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Recursive
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}

	// Google rich-results check
	if cfg != nil {
		final.google = cfg.Defaults.Google
	}
	if activeProfile != nil {
		final.google = activeProfile.Google
	}
	if isFlagSet("google") {
		final.google = flags.google
	}

	// Exclude patterns come from config only; profiles override defaults
	if cfg != nil {
		final.excludePatterns = cfg.Defaults.ExcludePatterns
	}
	if activeProfile != nil && len(activeProfile.ExcludePatterns) > 0 {
		final.excludePatterns = activeProfile.ExcludePatterns
	}

	return final
}

// buildHelpSystem registers every check's help provider
func buildHelpSystem(noColor bool) *help.System {
	helpSystem := help.NewSystem(noColor)
	helpSystem.RegisterProvider(structure.NewValidator())
	helpSystem.RegisterProvider(content.NewValidator())
	helpSystem.RegisterProvider(seo.NewValidator())
	helpSystem.RegisterProvider(google.NewValidator())
	return helpSystem
}

func main() {
	inputFile := flag.String("file", "", "Path to the input document, directory, or glob pattern")
	configFile := flag.String("config", "", "Path to configuration file")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "text", "Output format: text, json, csv, yaml")
	checksToRun := flag.String("checks", "all", "Specific checks to run: STRUCTURE,CONTENT,SEO,all")
	severityLevels := flag.String("severity", "all", "Severity levels to display: issues,warnings,suggestions,all")
	googleCheck := flag.Bool("google", false, "Also run the Google rich-results eligibility check")
	verbose := flag.Bool("verbose", false, "Display each finding with its originating check")
	debug := flag.Bool("debug", false, "Enable debug logging")
	recursive := flag.Bool("recursive", false, "Recursively scan directories")
	outputFile := flag.String("output", "", "Path to output file (default: stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	suppressionFile := flag.String("suppression-file", "", "Path to suppression configuration file")
	generateSuppressions := flag.Bool("generate-suppressions", false, "Generate suppression rules for current warnings and suggestions")
	showSuppressed := flag.Bool("show-suppressed", false, "Include suppressed findings in output")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help message")

	flag.Usage = func() {
		buildHelpSystem(!isTerminal(os.Stdout)).ShowGeneralHelp()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(exitValid)
	}

	if *showHelp {
		helpSystem := buildHelpSystem(*noColor || !isTerminal(os.Stdout))
		args := flag.Args()
		switch {
		case len(args) == 0:
			helpSystem.ShowGeneralHelp()
		case strings.EqualFold(args[0], "checks"):
			helpSystem.ShowChecksHelp()
		default:
			if !helpSystem.ShowCheckHelp(args[0]) {
				os.Exit(exitInvalid)
			}
		}
		os.Exit(exitValid)
	}

	cfg := loadConfiguration(*configFile)

	if *listProfiles {
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles defined")
			os.Exit(exitValid)
		}
		fmt.Println("Available profiles:")
		for _, name := range names {
			profile := cfg.Profiles[name]
			if profile.Description != "" {
				fmt.Printf("  %s - %s\n", name, profile.Description)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		os.Exit(exitValid)
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		profile, err := cfg.GetProfile(*profileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Use --list-profiles to see available profiles\n")
			os.Exit(exitInvalid)
		}
		activeProfile = profile
	}

	flags := &configFlags{
		outputFormat: *outputFormat,
		severities:   *severityLevels,
		checksToRun:  *checksToRun,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		recursive:    *recursive,
		google:       *googleCheck,
	}
	finalConfig := resolveConfiguration(cfg, activeProfile, flags)

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --file is required\n")
		fmt.Fprintf(os.Stderr, "Use --help for usage information\n")
		os.Exit(exitInvalid)
	}

	// Color is suppressed for files and pipes regardless of flags.
	effectiveNoColor := finalConfig.noColor || *outputFile != "" || !isTerminal(os.Stdout)

	observerLevel := observability.Metrics
	if finalConfig.debug {
		observerLevel = observability.Debug
	}
	observer := observability.NewStandardObserver(observerLevel, os.Stderr)

	suppressionManager := suppressions.NewSuppressionManager(*suppressionFile)

	validator := core.NewSchemaValidator()
	scanResult, err := core.ScanPaths(validator, core.ScanConfig{
		Paths:                []string{*inputFile},
		Checks:               core.ParseChecksToRun(finalConfig.checksToRun),
		Google:               finalConfig.google,
		Recursive:            finalConfig.recursive,
		ExcludePatterns:      finalConfig.excludePatterns,
		Observer:             observer,
		SuppressionManager:   suppressionManager,
		GenerateSuppressions: *generateSuppressions,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalid)
	}

	if scanResult.ProcessedFiles == 0 {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "No documents found to scan\n")
		}
		os.Exit(exitNoInput)
	}

	if *generateSuppressions && !*quiet {
		fmt.Fprintf(os.Stderr, "Suppression rules written to %s\n", suppressionManager.ConfigPath())
	}

	options := formatters.FormatterOptions{
		Severities:     core.ParseSeverityLevels(finalConfig.severities),
		Verbose:        finalConfig.verbose,
		NoColor:        effectiveNoColor,
		ShowSuppressed: *showSuppressed,
	}

	output, err := formatters.Export(finalConfig.format, scanResult.Reports, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalid)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output+"\n"), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(exitInvalid)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
		}
	} else {
		fmt.Println(output)
	}

	if finalConfig.google && finalConfig.format == "text" && !*quiet {
		fmt.Fprintf(os.Stderr, "\nVerify manually: %s\n", validator.GoogleTestURL())
		fmt.Fprintf(os.Stderr, "Schema reference: %s\n", validator.SchemaReferenceURL())
	}

	if scanResult.InvalidFiles > 0 || len(scanResult.Errors) > 0 {
		os.Exit(exitInvalid)
	}
	os.Exit(exitValid)
}

// isFlagSet reports whether a flag was given explicitly on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
