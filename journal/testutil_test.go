package journal

import (
	"fmt"
	"sync"
	"time"

	"yashubustudio/flowjournal/analyzer"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestStore returns a MemoryStore with sequential ids and a clock that
// advances one minute per call.
func newTestStore() *MemoryStore {
	s := NewMemoryStore()
	var ids, ticks int
	s.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	s.now = func() time.Time {
		ticks++
		return testEpoch.Add(time.Duration(ticks) * time.Minute)
	}
	return s
}

// scriptedAnalyzer returns canned results keyed by comment text and records
// the buckets it was offered.
type scriptedAnalyzer struct {
	results map[string]analyzer.Result
	err     error

	mu      sync.Mutex
	offered [][]analyzer.Bucket
}

func (s *scriptedAnalyzer) Analyze(text string, buckets []analyzer.Bucket) (analyzer.Result, error) {
	s.mu.Lock()
	s.offered = append(s.offered, buckets)
	s.mu.Unlock()
	if s.err != nil {
		return analyzer.Result{}, s.err
	}
	res, ok := s.results[text]
	if !ok {
		return analyzer.Result{
			Sentiment:  analyzer.SentimentNeutral,
			ActionType: analyzer.ActionInfo,
			Keywords:   []string{},
			Nouns:      []string{},
			Verbs:      []string{},
		}, nil
	}
	return res, nil
}

func strPtr(s string) *string { return &s }
