package main

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"yashubustudio/flowjournal/analyzer"
)

type analyzeOptions struct {
	bucketsPath string
	buckets     []string
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze one comment and print the result as JSON",
		Long: `Analyze a single comment against a list of existing buckets.

The comment is taken from the argument, or from stdin when omitted:
  flowjournal-cli analyze "ログイン画面のデザインが完了" --bucket ログイン画面
  echo "APIでエラーが発生" | flowjournal-cli analyze --buckets buckets.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, g, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.bucketsPath, "buckets", "", "File listing existing bucket names (newline or comma separated)")
	f.StringArrayVar(&opts.buckets, "bucket", nil, "Existing bucket name (repeatable)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, g *globalOptions, opts *analyzeOptions, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		var err error
		if text, err = readAllText(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("comment text is required (argument or stdin)")
	}

	env, logger, err := g.load(cmd)
	if err != nil {
		return err
	}
	names, err := bucketNames(opts.bucketsPath, opts.buckets)
	if err != nil {
		return err
	}
	buckets := make([]analyzer.Bucket, len(names))
	for i, name := range names {
		buckets[i] = analyzer.NewBucket(strconv.Itoa(i+1), name)
	}
	logger.Debug("Analyzing against %d buckets", len(buckets))

	a, err := newAnalyzer(env, logger)
	if err != nil {
		return err
	}
	res, err := a.Analyze(text, buckets)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}
