package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"yashubustudio/flowjournal/analyzer"
	"yashubustudio/flowjournal/internal/logging"
	"yashubustudio/flowjournal/journal"
)

type batchOptions struct {
	inputPath     string
	bucketsPath   string
	outputPath    string
	outputDir     string
	projectID     string
	parallel      int
	stdout        bool
	contentColumn string
	userColumn    string
	projectColumn string
}

// batchRow is the outcome of one input comment. Err holds a per-comment
// analysis failure; the batch keeps going past those.
type batchRow struct {
	Record    journal.CommentRecord
	ProjectID string
	Posted    journal.Posted
	Err       error
}

func newBatchCmd(g *globalOptions) *cobra.Command {
	opts := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Journal every comment of a CSV/TSV/text file and write a result CSV",
		Long: `Post every comment of an input file into an in-memory journal, in file
order per project, and write one result row per comment.

Projects are processed concurrently (--parallel); comments of the same
project are processed in order so bucket creation is deterministic.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, g, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.inputPath, "input", "", "CSV/TSV/text file containing comments (required)")
	f.StringVar(&opts.bucketsPath, "buckets", "", "File listing bucket names to seed every project with")
	f.StringVar(&opts.outputPath, "output", "", "CSV file to write results (default uses --output-dir/result_*.csv)")
	f.StringVar(&opts.outputDir, "output-dir", "csv", "Directory where result CSVs are written when --output is omitted")
	f.StringVar(&opts.projectID, "project", "", "Project for rows without a project column (default: $FLOWJOURNAL_PROJECT)")
	f.IntVar(&opts.parallel, "parallel", 0, "Projects processed concurrently (default: $FLOWJOURNAL_PARALLEL)")
	f.BoolVar(&opts.stdout, "stdout", false, "Print bucket statistics to STDOUT")
	f.StringVar(&opts.contentColumn, "content-column", "", "Column name or #index holding the comment text")
	f.StringVar(&opts.userColumn, "user-column", "", "Column name or #index holding the author")
	f.StringVar(&opts.projectColumn, "project-column", "", "Column name or #index holding the project")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runBatch(cmd *cobra.Command, g *globalOptions, opts *batchOptions) error {
	env, logger, err := g.load(cmd)
	if err != nil {
		return err
	}
	projectID := strings.TrimSpace(opts.projectID)
	if projectID == "" {
		projectID = env.ProjectID
	}
	parallel := opts.parallel
	if parallel <= 0 {
		parallel = env.Parallel
	}

	records, err := journal.ParseCommentFile(strings.TrimSpace(opts.inputPath), journal.InputOptions{
		ContentColumn: opts.contentColumn,
		UserColumn:    opts.userColumn,
		ProjectColumn: opts.projectColumn,
	})
	if err != nil {
		return fmt.Errorf("read input records: %w", err)
	}
	if len(records) == 0 {
		return errors.New("input file does not contain any comments")
	}
	seeds, err := bucketNames(opts.bucketsPath, nil)
	if err != nil {
		return fmt.Errorf("read bucket list: %w", err)
	}

	a, err := newAnalyzer(env, logger)
	if err != nil {
		return err
	}
	j := journal.New(journal.NewMemoryStore(), a, logger.Std())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	rows, err := postAll(ctx, j, records, projectID, seeds, parallel, logger)
	if err != nil {
		return err
	}
	logger.Info("Processed %d comments in %s", len(rows), time.Since(start).Round(time.Millisecond))

	outputPath, err := resolveOutputPath(opts.outputPath, opts.outputDir)
	if err != nil {
		return err
	}
	if err := writeResultCSV(outputPath, rows); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "分析結果を %s に保存しました\n", outputPath)

	if opts.stdout {
		return printBucketStats(ctx, out, j, projectsOf(rows))
	}
	return nil
}

// postAll posts records grouped by project. Groups run concurrently, up to
// parallel at a time; rows keep input order.
func postAll(ctx context.Context, j *journal.Journal, records []journal.CommentRecord, defaultProject string, seeds []string, parallel int, logger *logging.Logger) ([]batchRow, error) {
	rows := make([]batchRow, len(records))
	groups := make(map[string][]int)
	var order []string
	for i, rec := range records {
		project := rec.ProjectID
		if project == "" {
			project = defaultProject
		}
		rows[i] = batchRow{Record: rec, ProjectID: project}
		if _, ok := groups[project]; !ok {
			order = append(order, project)
		}
		groups[project] = append(groups[project], i)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for _, project := range order {
		project := project
		indices := groups[project]
		g.Go(func() error {
			if len(seeds) > 0 {
				if _, err := j.SeedBuckets(gCtx, project, seeds); err != nil {
					return fmt.Errorf("project %s: %w", project, err)
				}
			}
			for _, i := range indices {
				if err := gCtx.Err(); err != nil {
					return err
				}
				rec := rows[i].Record
				posted, err := j.Post(gCtx, project, rec.UserID, rec.Content)
				if err != nil {
					if !isCommentError(err) {
						return fmt.Errorf("line %d: %w", rec.Line, err)
					}
					logger.Error("Line %d skipped: %v", rec.Line, err)
					rows[i].Err = err
					continue
				}
				rows[i].Posted = posted
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// isCommentError reports failures caused by the comment itself rather than
// the journal.
func isCommentError(err error) bool {
	var tokErr *analyzer.TokenizationError
	return errors.As(err, &tokErr) ||
		errors.Is(err, analyzer.ErrInputTooLong) ||
		errors.Is(err, analyzer.ErrInvalidEncoding) ||
		errors.Is(err, journal.ErrEmptyContent)
}

func resolveOutputPath(path, dir string) (string, error) {
	if path = strings.TrimSpace(path); path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir = strings.TrimSpace(dir); dir == "" {
		dir = "csv"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("result_%s.csv", time.Now().Format("20060102150405"))
	return filepath.Join(absDir, filename), nil
}

var resultHeader = []string{"行", "プロジェクト", "投稿者", "本文", "バケット", "新規バケット", "感情", "アクション", "キーワード", "課題", "エラー"}

func writeResultCSV(path string, rows []batchRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(resultHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(resultRecord(row)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush result: %w", err)
	}
	return nil
}

func resultRecord(row batchRow) []string {
	rec := row.Record
	base := []string{strconv.Itoa(rec.Line), row.ProjectID, rec.UserID, rec.Content}
	if row.Err != nil {
		return append(base, "", "", "", "", "", "", row.Err.Error())
	}
	res := row.Posted.Result
	bucket := ""
	if res.BucketName != nil {
		bucket = *res.BucketName
	}
	issue := ""
	if res.IssueDetected != nil {
		issue = string(res.IssueDetected.Severity)
	}
	return append(base,
		bucket,
		strconv.FormatBool(res.IsNewBucket),
		string(res.Sentiment),
		string(res.ActionType),
		strings.Join(res.Keywords, " "),
		issue,
		"",
	)
}

func projectsOf(rows []batchRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if _, ok := seen[row.ProjectID]; ok {
			continue
		}
		seen[row.ProjectID] = struct{}{}
		out = append(out, row.ProjectID)
	}
	sort.Strings(out)
	return out
}

func printBucketStats(ctx context.Context, w io.Writer, j *journal.Journal, projects []string) error {
	for _, project := range projects {
		stats, err := j.BucketStats(ctx, project)
		if err != nil {
			return fmt.Errorf("bucket stats: %w", err)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "==== %s ====\n", project)
		for _, st := range stats {
			if st.CommentCount == 0 {
				continue
			}
			fmt.Fprintf(w, "%s  comments=%d positive=%d negative=%d complete=%d error=%d issues=%d momentum=%s\n",
				st.Name, st.CommentCount, st.PositiveCount, st.NegativeCount,
				st.CompleteCount, st.ErrorCount, st.OpenIssueCount, st.Momentum)
		}
		keywords, err := j.KeywordStats(ctx, project, 10)
		if err != nil {
			return fmt.Errorf("keyword stats: %w", err)
		}
		if len(keywords) == 0 {
			continue
		}
		parts := make([]string, len(keywords))
		for i, kw := range keywords {
			parts[i] = fmt.Sprintf("%s(%d)", kw.Keyword, kw.Count)
		}
		fmt.Fprintf(w, "keywords: %s\n", strings.Join(parts, " "))
	}
	return nil
}
