package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"yashubustudio/flowjournal/analyzer"
	"yashubustudio/flowjournal/internal/config"
	"yashubustudio/flowjournal/internal/logging"
	"yashubustudio/flowjournal/journal"
)

// load resolves the environment with command-line overrides applied and
// builds a logger writing to the command's stderr. An --env-file that cannot
// be read is an error.
func (g *globalOptions) load(cmd *cobra.Command) (*config.Env, *logging.Logger, error) {
	var files []string
	if path := strings.TrimSpace(g.envFile); path != "" {
		files = append(files, path)
	}
	env, err := config.Load(files...)
	if err != nil {
		return nil, nil, err
	}
	if v := strings.TrimSpace(g.configPath); v != "" {
		env.ConfigPath = v
	}
	if v := strings.TrimSpace(g.lexiconPath); v != "" {
		env.LexiconPath = v
	}
	if v := strings.TrimSpace(g.logLevel); v != "" {
		env.LogLevel = strings.ToLower(v)
	}
	return env, logging.New(cmd.ErrOrStderr(), env.LogLevel), nil
}

// loadAnalyzerConfig reads config.json and applies the lexicon override.
func loadAnalyzerConfig(env *config.Env) (analyzer.Config, error) {
	cfg, err := analyzer.LoadConfig(env.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if env.LexiconPath != "" {
		cfg.LexiconPath = env.LexiconPath
	}
	return cfg, nil
}

func newAnalyzer(env *config.Env, logger *logging.Logger) (*analyzer.Analyzer, error) {
	cfg, err := loadAnalyzerConfig(env)
	if err != nil {
		return nil, err
	}
	logger.Debug("Analyzer config: %+v", cfg)
	a, err := analyzer.New(cfg, analyzer.WithLogger(logger.Std()))
	if err != nil {
		return nil, fmt.Errorf("init analyzer: %w", err)
	}
	return a, nil
}

// bucketNames merges names from a bucket list file with names given on the
// command line, dropping duplicates by normalized name.
func bucketNames(path string, extra []string) ([]string, error) {
	var names []string
	if path = strings.TrimSpace(path); path != "" {
		fromFile, err := journal.ParseBucketFile(path)
		if err != nil {
			return nil, err
		}
		names = append(names, fromFile...)
	}
	names = append(names, extra...)
	return journal.ParseBucketNames(strings.Join(names, "\n")), nil
}

func readAllText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
