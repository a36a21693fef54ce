package journal

import "context"

// Store persists buckets, comments and issues.
type Store interface {
	// Buckets lists a project's buckets in creation order.
	Buckets(ctx context.Context, projectID string) ([]Bucket, error)
	// CreateBucket returns the bucket whose normalized name equals name's,
	// creating it when absent.
	CreateBucket(ctx context.Context, projectID, name string) (Bucket, error)
	DefaultBucket(ctx context.Context, projectID string) (Bucket, bool, error)
	CreateComment(ctx context.Context, c Comment) (Comment, error)
	// Comments lists a project's comments, newest first.
	Comments(ctx context.Context, projectID string, limit int) ([]Comment, error)
	// CommentsByBucket lists a bucket's comments, newest first. An unknown
	// bucket id yields ErrBucketNotFound.
	CommentsByBucket(ctx context.Context, bucketID string, limit int) ([]Comment, error)
	CreateIssue(ctx context.Context, issue IssueRecord) (IssueRecord, error)
	OpenIssues(ctx context.Context, projectID string) ([]IssueRecord, error)
	ResolveIssue(ctx context.Context, issueID string) (IssueRecord, error)
}
