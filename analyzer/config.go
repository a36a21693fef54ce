package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigFile = "config.json"

// Config aggregates analyzer settings persisted to config.json.
type Config struct {
	LexiconPath       string `json:"lexiconPath"`
	MaxInputRunes     int    `json:"maxInputRunes"`
	DescriptionRunes  int    `json:"descriptionRunes"`
	KeywordNouns      int    `json:"keywordNouns"`
	KeywordVerbs      int    `json:"keywordVerbs"`
	MinCandidateRunes int    `json:"minCandidateRunes"`
}

// ApplyDefaults populates zero values.
func (c *Config) ApplyDefaults() {
	if c.MaxInputRunes <= 0 {
		c.MaxInputRunes = 10000
	}
	if c.DescriptionRunes <= 0 {
		c.DescriptionRunes = 100
	}
	if c.KeywordNouns <= 0 {
		c.KeywordNouns = 5
	}
	if c.KeywordVerbs <= 0 {
		c.KeywordVerbs = 3
	}
	if c.MinCandidateRunes <= 0 {
		c.MinCandidateRunes = 2
	}
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from the given path or the default
// config.json. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ApplyDefaults()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
