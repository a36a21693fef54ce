package journal

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yashubustudio/flowjournal/analyzer"
)

// CommentAnalyzer classifies a comment against existing buckets.
type CommentAnalyzer interface {
	Analyze(text string, buckets []analyzer.Bucket) (analyzer.Result, error)
}

// Journal files incoming comments into buckets and records the issues
// they raise.
type Journal struct {
	store    Store
	analyzer CommentAnalyzer
	logger   *log.Logger
}

// New constructs a Journal. logger may be nil.
func New(store Store, a CommentAnalyzer, logger *log.Logger) *Journal {
	return &Journal{store: store, analyzer: a, logger: logger}
}

// Post analyzes content, resolves its bucket (matched, newly created, or the
// project's default bucket), stores the comment and, when one is detected,
// the issue. Blank content is rejected with ErrEmptyContent.
func (j *Journal) Post(ctx context.Context, projectID, userID, content string) (Posted, error) {
	if strings.TrimSpace(content) == "" {
		return Posted{}, ErrEmptyContent
	}
	stored, err := j.store.Buckets(ctx, projectID)
	if err != nil {
		return Posted{}, fmt.Errorf("list buckets: %w", err)
	}
	res, err := j.analyzer.Analyze(content, analyzerBuckets(stored))
	if err != nil {
		return Posted{}, fmt.Errorf("analyze comment: %w", err)
	}

	var bucketID string
	if res.BucketID != nil {
		bucketID = *res.BucketID
	}
	switch {
	case res.IsNewBucket && res.BucketName != nil:
		b, err := j.store.CreateBucket(ctx, projectID, *res.BucketName)
		if err != nil {
			return Posted{}, fmt.Errorf("create bucket: %w", err)
		}
		bucketID = b.ID
		res.BucketID = &b.ID
		res.BucketName = &b.Name
		j.logf("Created bucket %q in project %s", b.Name, projectID)
	case bucketID == "":
		def, ok, err := j.store.DefaultBucket(ctx, projectID)
		if err != nil {
			return Posted{}, fmt.Errorf("default bucket: %w", err)
		}
		if ok {
			bucketID = def.ID
			res.BucketID = &def.ID
			res.BucketName = &def.Name
		}
	}

	comment, err := j.store.CreateComment(ctx, Comment{
		ProjectID:  projectID,
		BucketID:   bucketID,
		UserID:     userID,
		Content:    content,
		Sentiment:  res.Sentiment,
		ActionType: res.ActionType,
		Keywords:   res.Keywords,
		Nouns:      res.Nouns,
		Verbs:      res.Verbs,
	})
	if err != nil {
		return Posted{}, fmt.Errorf("create comment: %w", err)
	}

	if res.IssueDetected != nil && bucketID != "" {
		if _, err := j.store.CreateIssue(ctx, IssueRecord{
			ProjectID:       projectID,
			BucketID:        bucketID,
			Description:     res.IssueDetected.Description,
			Severity:        res.IssueDetected.Severity,
			SourceCommentID: comment.ID,
		}); err != nil {
			return Posted{}, fmt.Errorf("create issue: %w", err)
		}
	}
	return Posted{Comment: comment, Result: res}, nil
}

// SeedBuckets creates the named buckets in order, skipping blanks and names
// that normalize to an existing bucket.
func (j *Journal) SeedBuckets(ctx context.Context, projectID string, names []string) ([]Bucket, error) {
	out := make([]Bucket, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		b, err := j.store.CreateBucket(ctx, projectID, name)
		if err != nil {
			return out, fmt.Errorf("seed bucket %q: %w", name, err)
		}
		out = append(out, b)
	}
	j.logf("Seeded %d buckets in project %s", len(out), projectID)
	return out, nil
}

// Buckets lists the project's buckets.
func (j *Journal) Buckets(ctx context.Context, projectID string) ([]Bucket, error) {
	return j.store.Buckets(ctx, projectID)
}

// Comments lists the project's latest comments.
func (j *Journal) Comments(ctx context.Context, projectID string, limit int) ([]Comment, error) {
	return j.store.Comments(ctx, projectID, limit)
}

// BucketComments lists the bucket's latest comments.
func (j *Journal) BucketComments(ctx context.Context, bucketID string, limit int) ([]Comment, error) {
	return j.store.CommentsByBucket(ctx, bucketID, limit)
}

// OpenIssues lists the project's unresolved issues.
func (j *Journal) OpenIssues(ctx context.Context, projectID string) ([]IssueRecord, error) {
	return j.store.OpenIssues(ctx, projectID)
}

// ResolveIssue closes an issue.
func (j *Journal) ResolveIssue(ctx context.Context, issueID string) (IssueRecord, error) {
	return j.store.ResolveIssue(ctx, issueID)
}

func analyzerBuckets(buckets []Bucket) []analyzer.Bucket {
	out := make([]analyzer.Bucket, len(buckets))
	for i, b := range buckets {
		out[i] = b.Bucket
	}
	return out
}

func (j *Journal) logf(format string, args ...any) {
	if j.logger != nil {
		j.logger.Printf(format, args...)
	}
}
