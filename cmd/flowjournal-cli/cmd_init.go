package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"yashubustudio/flowjournal/analyzer"
)

const defaultLexiconFile = "lexicon.yaml"

func newInitCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.json and lexicon file when missing",
		Long: `Write config.json and an editable lexicon file with the built-in word
lists. Existing files are left untouched.

Use the global --config and --lexicon flags to choose the paths; the
lexicon format follows its extension (.json, .yaml or .yml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadAnalyzerConfig(env)
			if err != nil {
				return err
			}
			lexiconPath := strings.TrimSpace(cfg.LexiconPath)
			if lexiconPath == "" {
				lexiconPath = filepath.Join(filepath.Dir(env.ConfigPath), defaultLexiconFile)
				cfg.LexiconPath = lexiconPath
			}

			out := cmd.OutOrStdout()
			created, err := writeConfigIfMissing(env.ConfigPath, cfg)
			if err != nil {
				return err
			}
			reportInit(out, env.ConfigPath, created)

			created, err = analyzer.EnsureLexiconFile(lexiconPath)
			if err != nil {
				return err
			}
			reportInit(out, lexiconPath, created)
			logger.Debug("Config: %+v", cfg)
			return nil
		},
	}
}

func writeConfigIfMissing(path string, cfg analyzer.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := analyzer.SaveConfig(path, cfg); err != nil {
		return false, err
	}
	return true, nil
}

func reportInit(w io.Writer, path string, created bool) {
	if created {
		fmt.Fprintf(w, "created %s\n", path)
		return
	}
	fmt.Fprintf(w, "exists  %s\n", path)
}
