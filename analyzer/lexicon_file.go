package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadLexicon reads word lists from a JSON or YAML file and merges them over
// the built-in lexicon: categories present in the file replace the defaults,
// absent ones keep them. An empty path returns the defaults. The boolean
// reports whether a file was read.
func LoadLexicon(path string) (Lexicon, bool, error) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return DefaultLexicon(), false, nil
	}
	data, err := os.ReadFile(filepath.Clean(clean))
	if err != nil {
		return DefaultLexicon(), false, fmt.Errorf("read lexicon: %w", err)
	}
	var overrides Lexicon
	if isYAMLPath(clean) {
		err = yaml.Unmarshal(data, &overrides)
	} else {
		err = json.Unmarshal(data, &overrides)
	}
	if err != nil {
		return DefaultLexicon(), false, fmt.Errorf("decode lexicon %s: %w", filepath.Base(clean), err)
	}
	return overrides.withDefaults(), true, nil
}

// EncodeLexicon renders lex as YAML when format is "yaml"/"yml" and as
// indented JSON otherwise.
func EncodeLexicon(lex Lexicon, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		data, err := yaml.Marshal(lex)
		if err != nil {
			return nil, fmt.Errorf("encode lexicon: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(lex, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode lexicon: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// EnsureLexiconFile writes the default lexicon to path when no file exists
// yet, so the word lists can be edited without rebuilding. It reports
// whether a file was created.
func EnsureLexiconFile(path string) (bool, error) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return false, nil
	}
	clean = filepath.Clean(clean)
	if _, err := os.Stat(clean); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat lexicon: %w", err)
	}
	dir := filepath.Dir(clean)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create lexicon dir: %w", err)
		}
	}
	format := "json"
	if isYAMLPath(clean) {
		format = "yaml"
	}
	data, err := EncodeLexicon(DefaultLexicon(), format)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		return false, fmt.Errorf("write lexicon: %w", err)
	}
	return true, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
