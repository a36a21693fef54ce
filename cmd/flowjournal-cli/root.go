package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalOptions override the FLOWJOURNAL_* environment for one invocation.
type globalOptions struct {
	envFile     string
	configPath  string
	lexiconPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "flowjournal-cli",
		Short: "Sort progress comments into buckets and flag issues",
		Long: `flowjournal-cli analyzes short Japanese status comments: it picks or
creates a thematic bucket, classifies sentiment and the reported action,
extracts keywords and flags comments that describe a problem.

Settings are read from config.json and the FLOWJOURNAL_* environment
variables (a .env file is loaded when present).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&g.envFile, "env-file", "", "Path to a .env file (default: ./.env when present)")
	f.StringVar(&g.configPath, "config", "", "Path to config.json (default: $FLOWJOURNAL_CONFIG or ./config.json)")
	f.StringVar(&g.lexiconPath, "lexicon", "", "Path to a lexicon file (default: $FLOWJOURNAL_LEXICON or lexiconPath in config)")
	f.StringVar(&g.logLevel, "log-level", "", "debug, info or error (default: $FLOWJOURNAL_LOG_LEVEL)")

	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newBatchCmd(g))
	root.AddCommand(newInitCmd(g))
	root.AddCommand(newLexiconCmd(g))
	return root
}
