package journal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"yashubustudio/flowjournal/analyzer"
)

// MemoryStore is an in-process Store. Every project gets a default bucket
// the first time it is touched.
type MemoryStore struct {
	mu       sync.RWMutex
	buckets  map[string][]Bucket
	comments []Comment
	issues   []IssueRecord

	now   func() time.Time
	newID func() string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string][]Bucket),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ensureProject must be called with mu held for writing.
func (s *MemoryStore) ensureProject(projectID string) []Bucket {
	if list, ok := s.buckets[projectID]; ok {
		return list
	}
	def := Bucket{
		Bucket:    analyzer.NewBucket(s.newID(), DefaultBucketName),
		ProjectID: projectID,
		IsDefault: true,
		CreatedAt: s.now(),
	}
	list := []Bucket{def}
	s.buckets[projectID] = list
	return list
}

// Buckets returns a copy of the project's buckets in creation order.
func (s *MemoryStore) Buckets(_ context.Context, projectID string) ([]Bucket, error) {
	if projectID == "" {
		return nil, ErrEmptyProjectID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.ensureProject(projectID)
	out := make([]Bucket, len(list))
	copy(out, list)
	return out, nil
}

// CreateBucket stores a new bucket unless one with the same normalized name exists.
func (s *MemoryStore) CreateBucket(_ context.Context, projectID, name string) (Bucket, error) {
	if projectID == "" {
		return Bucket{}, ErrEmptyProjectID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Bucket{}, ErrEmptyBucketName
	}
	normalized := analyzer.Normalize(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.ensureProject(projectID)
	for _, b := range list {
		if b.NameNormalized == normalized {
			return b, nil
		}
	}
	b := Bucket{
		Bucket:    analyzer.NewBucket(s.newID(), name),
		ProjectID: projectID,
		CreatedAt: s.now(),
	}
	s.buckets[projectID] = append(list, b)
	return b, nil
}

// DefaultBucket returns the project's catch-all bucket.
func (s *MemoryStore) DefaultBucket(_ context.Context, projectID string) (Bucket, bool, error) {
	if projectID == "" {
		return Bucket{}, false, ErrEmptyProjectID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.ensureProject(projectID) {
		if b.IsDefault {
			return b, true, nil
		}
	}
	return Bucket{}, false, nil
}

// CreateComment assigns an id and timestamp and stores c.
func (s *MemoryStore) CreateComment(_ context.Context, c Comment) (Comment, error) {
	if c.ProjectID == "" {
		return Comment{}, ErrEmptyProjectID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	c.CreatedAt = s.now()
	c.Keywords = cloneStrings(c.Keywords)
	c.Nouns = cloneStrings(c.Nouns)
	c.Verbs = cloneStrings(c.Verbs)
	s.comments = append(s.comments, c)
	return c, nil
}

// Comments returns up to limit comments of the project, newest first.
// A limit <= 0 returns all of them.
func (s *MemoryStore) Comments(_ context.Context, projectID string, limit int) ([]Comment, error) {
	return s.collectComments(limit, func(c Comment) bool { return c.ProjectID == projectID }), nil
}

// CommentsByBucket returns up to limit comments of the bucket, newest first.
func (s *MemoryStore) CommentsByBucket(_ context.Context, bucketID string, limit int) ([]Comment, error) {
	if !s.hasBucket(bucketID) {
		return nil, fmt.Errorf("comments of %s: %w", bucketID, ErrBucketNotFound)
	}
	return s.collectComments(limit, func(c Comment) bool { return c.BucketID == bucketID }), nil
}

func (s *MemoryStore) hasBucket(bucketID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range s.buckets {
		for _, b := range list {
			if b.ID == bucketID {
				return true
			}
		}
	}
	return false
}

func (s *MemoryStore) collectComments(limit int, keep func(Comment) bool) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Comment
	for i := len(s.comments) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if keep(s.comments[i]) {
			out = append(out, s.comments[i])
		}
	}
	return out
}

// CreateIssue assigns an id and detection time and stores issue.
func (s *MemoryStore) CreateIssue(_ context.Context, issue IssueRecord) (IssueRecord, error) {
	if issue.ProjectID == "" {
		return IssueRecord{}, ErrEmptyProjectID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	issue.ID = s.newID()
	issue.DetectedAt = s.now()
	issue.IsResolved = false
	issue.ResolvedAt = nil
	s.issues = append(s.issues, issue)
	return issue, nil
}

// OpenIssues returns unresolved issues ordered by severity, then detection order.
func (s *MemoryStore) OpenIssues(_ context.Context, projectID string) ([]IssueRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []IssueRecord
	for _, issue := range s.issues {
		if issue.ProjectID == projectID && !issue.IsResolved {
			out = append(out, issue)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return severityRank(out[i].Severity) < severityRank(out[j].Severity)
	})
	return out, nil
}

// ResolveIssue marks the issue resolved.
func (s *MemoryStore) ResolveIssue(_ context.Context, issueID string) (IssueRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.issues {
		if s.issues[i].ID != issueID {
			continue
		}
		if !s.issues[i].IsResolved {
			at := s.now()
			s.issues[i].IsResolved = true
			s.issues[i].ResolvedAt = &at
		}
		return s.issues[i], nil
	}
	return IssueRecord{}, fmt.Errorf("resolve %s: %w", issueID, ErrIssueNotFound)
}

func severityRank(sev analyzer.Severity) int {
	switch sev {
	case analyzer.SeverityCritical:
		return 0
	case analyzer.SeverityWarning:
		return 1
	case analyzer.SeverityMinor:
		return 2
	case analyzer.SeverityWaiting:
		return 3
	default:
		return 4
	}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
