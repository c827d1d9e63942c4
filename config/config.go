package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Report   ReportConfig `json:"report"`
	Branches BranchConfig `json:"branches"`
	Authors  AuthorConfig `json:"authors"`
}

// ReportConfig holds report generation defaults.
type ReportConfig struct {
	DefaultPeriod       string `json:"defaultPeriod"`       // Default: "week"
	DefaultFormat       string `json:"defaultFormat"`       // Default: "console"
	MaxCommitsPerBranch int    `json:"maxCommitsPerBranch"` // 0 = unlimited
}

// BranchConfig holds branch name filtering options.
type BranchConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// AuthorConfig holds author filtering options.
type AuthorConfig struct {
	Filter string `json:"filter"` // Substring matched against author name/email
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			DefaultPeriod:       "week",
			DefaultFormat:       "console",
			MaxCommitsPerBranch: 0,
		},
		Branches: BranchConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitreport.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitreport.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitreport.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
