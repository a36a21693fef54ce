package journal

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"yashubustudio/flowjournal/analyzer"
)

// CommentRecord is one comment read from an input file.
type CommentRecord struct {
	Line      int    `json:"line"`
	ProjectID string `json:"project_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Content   string `json:"content"`
}

// InputOptions selects the CSV/TSV columns to read. Each column is a header
// name or a 1-based "#n" index; empty means auto-detect from Candidates.
type InputOptions struct {
	ContentColumn string
	UserColumn    string
	ProjectColumn string
	Candidates    ColumnCandidates
}

// ParseCommentFile reads comments from a .csv/.tsv file, or from a plain
// text file with one comment per line.
func ParseCommentFile(path string, opts InputOptions) ([]CommentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseComments(f, ',', opts)
	case ".tsv":
		return ParseComments(f, '\t', opts)
	default:
		return parsePlainComments(f)
	}
}

// ParseComments reads delimited comment records from r.
func ParseComments(r io.Reader, comma rune, opts InputOptions) ([]CommentRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	cols, skipHeader, err := resolveColumns(header, opts)
	if err != nil {
		return nil, err
	}
	start := 0
	if skipHeader {
		start = 1
	}
	records := make([]CommentRecord, 0, len(rows)-start)
	for i, row := range rows[start:] {
		rec := CommentRecord{
			Line:      start + i + 1,
			Content:   cellAt(row, cols.content),
			UserID:    cellAt(row, cols.user),
			ProjectID: cellAt(row, cols.project),
		}
		if rec.Content == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parsePlainComments(r io.Reader) ([]CommentRecord, error) {
	var out []CommentRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := cleanCell(scanner.Text())
		if text == "" {
			continue
		}
		out = append(out, CommentRecord{Line: line, Content: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan text file: %w", err)
	}
	return out, nil
}

// ParseBucketFile reads bucket names separated by newlines, commas or
// semicolons.
func ParseBucketFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bucket file: %w", err)
	}
	return ParseBucketNames(string(data)), nil
}

// ParseBucketNames splits data into bucket names, keeping the first of any
// names that normalize to the same key.
func ParseBucketNames(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	tokens := strings.FieldsFunc(data, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{})
	for _, token := range tokens {
		token = cleanCell(token)
		if token == "" {
			continue
		}
		key := analyzer.Normalize(token)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, token)
	}
	return out
}

func cleanCell(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), "\ufeff")
	return analyzer.CleanText(v)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

type resolvedColumns struct {
	content int
	user    int
	project int
}

func resolveColumns(header []string, opts InputOptions) (resolvedColumns, bool, error) {
	res := resolvedColumns{content: -1, user: -1, project: -1}
	candidates := opts.Candidates.withDefaults()
	var (
		fromHeader [3]bool
		err        error
	)
	if res.content, fromHeader[0], err = pickColumn(header, opts.ContentColumn, candidates.Content); err != nil {
		return res, false, err
	}
	if res.user, fromHeader[1], err = pickColumn(header, opts.UserColumn, candidates.User); err != nil {
		return res, false, err
	}
	if res.project, fromHeader[2], err = pickColumn(header, opts.ProjectColumn, candidates.Project); err != nil {
		return res, false, err
	}
	skipHeader := fromHeader[0] || fromHeader[1] || fromHeader[2]
	if res.content < 0 {
		if skipHeader {
			return res, false, errors.New("no content column found")
		}
		// Headerless file: the first column holds the comment.
		res.content = 0
	}
	return res, skipHeader, nil
}

func pickColumn(header []string, explicit string, candidates []string) (int, bool, error) {
	if strings.TrimSpace(explicit) != "" {
		return matchExplicitColumn(header, explicit)
	}
	if idx := findColumn(header, candidates); idx >= 0 {
		return idx, true, nil
	}
	return -1, false, nil
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}

func matchExplicitColumn(header []string, explicit string) (int, bool, error) {
	trimmed := strings.TrimSpace(explicit)
	for i, col := range header {
		if strings.EqualFold(col, trimmed) {
			return i, true, nil
		}
	}
	if strings.HasPrefix(trimmed, "#") {
		idx, err := parseColumnIndex(trimmed)
		if err != nil {
			return -1, false, err
		}
		if idx >= len(header) {
			return -1, false, fmt.Errorf("column index %s is out of range", trimmed)
		}
		return idx, false, nil
	}
	return -1, false, fmt.Errorf("column %q not found", explicit)
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}
	return idx - 1, nil
}
