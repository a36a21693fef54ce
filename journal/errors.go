package journal

import "errors"

var (
	ErrBucketNotFound  = errors.New("bucket not found")
	ErrIssueNotFound   = errors.New("issue not found")
	ErrEmptyBucketName = errors.New("bucket name is empty")
	ErrEmptyProjectID  = errors.New("project id is empty")
	ErrEmptyContent    = errors.New("comment content is empty")
)
