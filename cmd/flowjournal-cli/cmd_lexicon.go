package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yashubustudio/flowjournal/analyzer"
)

func newLexiconCmd(g *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print the effective lexicon",
		Long: `Print the word lists the analyzer would use: the lexicon file named by
--lexicon, $FLOWJOURNAL_LEXICON or config.json merged over the built-in
lists.`,
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
			lex, fromFile, err := analyzer.LoadLexicon(cfg.LexiconPath)
			if err != nil {
				return err
			}
			if fromFile {
				logger.Info("Lexicon loaded from %s", cfg.LexiconPath)
			}
			data, err := analyzer.EncodeLexicon(lex, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			if err != nil {
				return fmt.Errorf("write lexicon: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: json or yaml")
	return cmd
}
