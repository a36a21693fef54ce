package journal

import (
	"time"

	"yashubustudio/flowjournal/analyzer"
)

// DefaultBucketName is the catch-all bucket every project starts with.
const DefaultBucketName = "未分類"

// Bucket is a stored thematic group.
type Bucket struct {
	analyzer.Bucket
	ProjectID string    `json:"project_id"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a stored status update with its analysis fields.
type Comment struct {
	ID         string              `json:"id"`
	ProjectID  string              `json:"project_id"`
	BucketID   string              `json:"bucket_id,omitempty"`
	UserID     string              `json:"user_id"`
	Content    string              `json:"content"`
	Sentiment  analyzer.Sentiment  `json:"sentiment"`
	ActionType analyzer.ActionType `json:"action_type"`
	Keywords   []string            `json:"keywords"`
	Nouns      []string            `json:"nouns"`
	Verbs      []string            `json:"verbs"`
	CreatedAt  time.Time           `json:"created_at"`
}

// IssueRecord is a stored issue raised from a comment.
type IssueRecord struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"project_id"`
	BucketID        string            `json:"bucket_id"`
	Description     string            `json:"description"`
	Severity        analyzer.Severity `json:"severity"`
	IsResolved      bool              `json:"is_resolved"`
	SourceCommentID string            `json:"source_comment_id"`
	DetectedAt      time.Time         `json:"detected_at"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
}

// Posted is returned by Journal.Post.
type Posted struct {
	Comment Comment         `json:"comment"`
	Result  analyzer.Result `json:"nlp_result"`
}

// Momentum summarizes where a bucket is heading.
type Momentum string

const (
	MomentumUp     Momentum = "up"
	MomentumStable Momentum = "stable"
	MomentumDown   Momentum = "down"
)

// BucketStat aggregates the comments and issues of one bucket.
type BucketStat struct {
	BucketID       string     `json:"bucket_id"`
	Name           string     `json:"name"`
	CommentCount   int        `json:"comment_count"`
	PositiveCount  int        `json:"positive_count"`
	NegativeCount  int        `json:"negative_count"`
	CompleteCount  int        `json:"complete_count"`
	ErrorCount     int        `json:"error_count"`
	OpenIssueCount int        `json:"open_issue_count"`
	LastActivity   *time.Time `json:"last_activity"`
	Momentum       Momentum   `json:"momentum"`
}

// KeywordStat counts how often a keyword appears across comments.
type KeywordStat struct {
	Keyword       string `json:"keyword"`
	Count         int    `json:"count"`
	PositiveCount int    `json:"positive_count"`
	NegativeCount int    `json:"negative_count"`
}
