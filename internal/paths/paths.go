// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// ProjectSuppressionsFile is the suppression file probed in the working
// directory before falling back to the user config directory.
const ProjectSuppressionsFile = ".faq-scan-suppressions.yaml"

// GetConfigDir returns the faq-scan configuration directory.
// FAQ_SCAN_CONFIG_DIR overrides the default of ~/.faq-scan.
func GetConfigDir() string {
	if dir := os.Getenv("FAQ_SCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".faq-scan")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetSuppressionsFile returns the path to the user-level suppressions file
func GetSuppressionsFile() string {
	return filepath.Join(GetConfigDir(), "suppressions.yaml")
}
