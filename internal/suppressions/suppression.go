// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package suppressions

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"faq-scan/internal/diagnostics"
	"faq-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// SuppressionRule represents a single suppression rule
type SuppressionRule struct {
	ID        string            `yaml:"id"`
	Hash      string            `yaml:"hash"`
	Reason    string            `yaml:"reason"`
	Enabled   bool              `yaml:"enabled"`
	CreatedBy string            `yaml:"created_by,omitempty"`
	CreatedAt time.Time         `yaml:"created_at"`
	ExpiresAt *time.Time        `yaml:"expires_at,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// SuppressionConfig represents the suppression configuration file
type SuppressionConfig struct {
	Version string            `yaml:"version"`
	Rules   []SuppressionRule `yaml:"rules"`
}

// SuppressedFinding represents a finding that was suppressed by a rule
type SuppressedFinding struct {
	Finding      diagnostics.Finding `json:"finding" yaml:"finding"`
	File         string              `json:"file" yaml:"file"`
	SuppressedBy string              `json:"suppressed_by" yaml:"suppressed_by"`
	RuleReason   string              `json:"rule_reason" yaml:"rule_reason"`
	ExpiresAt    *time.Time          `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// SuppressionManager handles finding suppressions. Hard issues are never
// suppressible: hiding them would make an invalid document report valid.
type SuppressionManager struct {
	configPath string
	config     *SuppressionConfig
	enabled    bool
}

// NewSuppressionManager creates a new suppression manager. An empty path
// probes the working directory, then the user config directory.
func NewSuppressionManager(configPath string) *SuppressionManager {
	if configPath == "" {
		configPath = findDefaultSuppressionFile()
	}

	manager := &SuppressionManager{
		configPath: configPath,
		enabled:    true,
	}

	manager.loadConfig()
	return manager
}

// findDefaultSuppressionFile looks for default suppression files
func findDefaultSuppressionFile() string {
	if _, err := os.Stat(paths.ProjectSuppressionsFile); err == nil {
		return paths.ProjectSuppressionsFile
	}
	return paths.GetSuppressionsFile()
}

// IsEnabled reports whether suppression matching is active
func (sm *SuppressionManager) IsEnabled() bool {
	return sm.enabled
}

// ConfigPath returns the suppression file in use
func (sm *SuppressionManager) ConfigPath() string {
	return sm.configPath
}

// loadConfig loads the suppression configuration. A missing or unreadable
// file yields an empty rule set, never an error.
func (sm *SuppressionManager) loadConfig() {
	empty := &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}

	if sm.configPath == "" {
		sm.config = empty
		return
	}

	data, err := os.ReadFile(filepath.Clean(sm.configPath))
	if err != nil {
		sm.config = empty
		return
	}

	var config SuppressionConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		sm.config = empty
		return
	}

	sm.config = &config
}

// generateFindingHash creates a stable hash identifying a finding. The file
// basename keeps rules portable across checkouts.
func (sm *SuppressionManager) generateFindingHash(finding diagnostics.Finding, file string) string {
	composite := strings.Join([]string{
		string(finding.Severity),
		finding.Check,
		finding.Message,
		filepath.Base(file),
	}, "|")

	hash := sha256.Sum256([]byte(composite))
	return fmt.Sprintf("%x", hash)
}

// IsSuppressed checks if a finding should be suppressed
func (sm *SuppressionManager) IsSuppressed(finding diagnostics.Finding, file string) (bool, *SuppressionRule) {
	if !sm.enabled || sm.config == nil {
		return false, nil
	}
	if finding.Severity == diagnostics.SeverityIssue {
		return false, nil
	}

	findingHash := sm.generateFindingHash(finding, file)

	for i := range sm.config.Rules {
		rule := &sm.config.Rules[i]
		if rule.Hash != findingHash {
			continue
		}
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && time.Now().After(*rule.ExpiresAt) {
			continue
		}
		return true, rule
	}

	return false, nil
}

// AddSuppression adds a new suppression rule for a finding. Hard issues are
// rejected. A nil expiry never expires.
func (sm *SuppressionManager) AddSuppression(finding diagnostics.Finding, file, reason, createdBy string, expiresAt *time.Time) error {
	if finding.Severity == diagnostics.SeverityIssue {
		return fmt.Errorf("hard issues cannot be suppressed")
	}

	if sm.config == nil {
		sm.config = &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}
	}

	findingHash := sm.generateFindingHash(finding, file)

	for _, rule := range sm.config.Rules {
		if rule.Hash == findingHash {
			return fmt.Errorf("suppression rule already exists for this finding")
		}
	}

	// Generate unique ID with sequential number
	maxID := 0
	for _, existingRule := range sm.config.Rules {
		if existingRule.ID != "" {
			var num int
			if _, err := fmt.Sscanf(existingRule.ID, "SUP-%08d", &num); err == nil && num > maxID {
				maxID = num
			}
		}
	}

	rule := SuppressionRule{
		ID:        fmt.Sprintf("SUP-%08d", maxID+1),
		Hash:      findingHash,
		Reason:    reason,
		Enabled:   true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
		Metadata: map[string]string{
			"severity": string(finding.Severity),
			"check":    finding.Check,
			"message":  finding.Message,
			"filename": filepath.Base(file),
		},
	}

	sm.config.Rules = append(sm.config.Rules, rule)
	return sm.saveConfig()
}

// EnableSuppressionByHash enables the rule with the given hash, creating one
// if none exists. Used when the hash is known from a previous report.
func (sm *SuppressionManager) EnableSuppressionByHash(hash, reason string) error {
	if sm.config == nil {
		sm.config = &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}
	}

	for i := range sm.config.Rules {
		if sm.config.Rules[i].Hash == hash {
			sm.config.Rules[i].Enabled = true
			if reason != "" {
				sm.config.Rules[i].Reason = reason
			}
			return sm.saveConfig()
		}
	}

	maxID := 0
	for _, existingRule := range sm.config.Rules {
		var num int
		if _, err := fmt.Sscanf(existingRule.ID, "SUP-%08d", &num); err == nil && num > maxID {
			maxID = num
		}
	}

	sm.config.Rules = append(sm.config.Rules, SuppressionRule{
		ID:        fmt.Sprintf("SUP-%08d", maxID+1),
		Hash:      hash,
		Reason:    reason,
		Enabled:   true,
		CreatedAt: time.Now(),
	})
	return sm.saveConfig()
}

// RemoveSuppression removes a suppression rule by ID
func (sm *SuppressionManager) RemoveSuppression(id string) error {
	if sm.config == nil {
		return fmt.Errorf("no suppression config loaded")
	}

	for i, rule := range sm.config.Rules {
		if rule.ID == id {
			sm.config.Rules = append(sm.config.Rules[:i], sm.config.Rules[i+1:]...)
			return sm.saveConfig()
		}
	}

	return fmt.Errorf("suppression rule with ID %s not found", id)
}

// ListSuppressions returns all suppression rules
func (sm *SuppressionManager) ListSuppressions() []SuppressionRule {
	if sm.config == nil {
		return []SuppressionRule{}
	}
	return sm.config.Rules
}

// CleanupExpired removes expired suppression rules and returns the count
func (sm *SuppressionManager) CleanupExpired() int {
	if sm.config == nil {
		return 0
	}

	now := time.Now()
	originalCount := len(sm.config.Rules)

	var activeRules []SuppressionRule
	for _, rule := range sm.config.Rules {
		if rule.ExpiresAt == nil || now.Before(*rule.ExpiresAt) {
			activeRules = append(activeRules, rule)
		}
	}

	sm.config.Rules = activeRules
	removed := originalCount - len(activeRules)

	if removed > 0 {
		sm.saveConfig()
	}

	return removed
}

// Apply splits findings into kept and suppressed groups for one file
func (sm *SuppressionManager) Apply(findings []diagnostics.Finding, file string) ([]diagnostics.Finding, []SuppressedFinding) {
	kept := make([]diagnostics.Finding, 0, len(findings))
	var suppressed []SuppressedFinding

	for _, finding := range findings {
		if isSuppressed, rule := sm.IsSuppressed(finding, file); isSuppressed {
			suppressed = append(suppressed, SuppressedFinding{
				Finding:      finding,
				File:         file,
				SuppressedBy: rule.ID,
				RuleReason:   rule.Reason,
				ExpiresAt:    rule.ExpiresAt,
			})
		} else {
			kept = append(kept, finding)
		}
	}

	return kept, suppressed
}

// saveConfig saves the suppression configuration to file
func (sm *SuppressionManager) saveConfig() error {
	if sm.configPath == "" {
		sm.configPath = paths.GetSuppressionsFile()
	}

	data, err := yaml.Marshal(sm.config)
	if err != nil {
		return fmt.Errorf("failed to marshal suppression config: %w", err)
	}

	dir := filepath.Dir(sm.configPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(sm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write suppression config: %w", err)
	}

	return nil
}
