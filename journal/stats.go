package journal

import (
	"context"
	"fmt"
	"sort"

	"yashubustudio/flowjournal/analyzer"
)

// BucketStats aggregates comment and issue counts per bucket of the project,
// in bucket order.
func (j *Journal) BucketStats(ctx context.Context, projectID string) ([]BucketStat, error) {
	buckets, err := j.store.Buckets(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	comments, err := j.store.Comments(ctx, projectID, 0)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	issues, err := j.store.OpenIssues(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	stats := make([]BucketStat, len(buckets))
	byID := make(map[string]*BucketStat, len(buckets))
	for i, b := range buckets {
		stats[i] = BucketStat{BucketID: b.ID, Name: b.Name}
		byID[b.ID] = &stats[i]
	}
	for _, c := range comments {
		st, ok := byID[c.BucketID]
		if !ok {
			continue
		}
		st.CommentCount++
		switch c.Sentiment {
		case analyzer.SentimentPositive:
			st.PositiveCount++
		case analyzer.SentimentNegative:
			st.NegativeCount++
		}
		switch c.ActionType {
		case analyzer.ActionComplete:
			st.CompleteCount++
		case analyzer.ActionError:
			st.ErrorCount++
		}
		if st.LastActivity == nil || c.CreatedAt.After(*st.LastActivity) {
			at := c.CreatedAt
			st.LastActivity = &at
		}
	}
	for _, issue := range issues {
		if st, ok := byID[issue.BucketID]; ok {
			st.OpenIssueCount++
		}
	}
	for i := range stats {
		stats[i].Momentum = momentum(stats[i])
	}
	return stats, nil
}

// momentum compares good signals (positive, complete) with bad ones
// (negative, error).
func momentum(st BucketStat) Momentum {
	good := st.PositiveCount + st.CompleteCount
	bad := st.NegativeCount + st.ErrorCount
	switch {
	case good > bad:
		return MomentumUp
	case bad > good:
		return MomentumDown
	default:
		return MomentumStable
	}
}

// KeywordStats counts keywords across the project's comments, most frequent
// first. A limit <= 0 returns every keyword.
func (j *Journal) KeywordStats(ctx context.Context, projectID string, limit int) ([]KeywordStat, error) {
	comments, err := j.store.Comments(ctx, projectID, 0)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	index := make(map[string]int)
	var stats []KeywordStat
	for _, c := range comments {
		for _, kw := range c.Keywords {
			i, ok := index[kw]
			if !ok {
				i = len(stats)
				index[kw] = i
				stats = append(stats, KeywordStat{Keyword: kw})
			}
			stats[i].Count++
			switch c.Sentiment {
			case analyzer.SentimentPositive:
				stats[i].PositiveCount++
			case analyzer.SentimentNegative:
				stats[i].NegativeCount++
			}
		}
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Keyword < stats[j].Keyword
		}
		return stats[i].Count > stats[j].Count
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}
