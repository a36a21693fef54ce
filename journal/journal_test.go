package journal

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"yashubustudio/flowjournal/analyzer"
)

func TestPostCreatesNewBucket(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	stub := &scriptedAnalyzer{results: map[string]analyzer.Result{
		"決済機能の実装を開始しました": {
			BucketName:  strPtr("決済機能"),
			IsNewBucket: true,
			Sentiment:   analyzer.SentimentNeutral,
			ActionType:  analyzer.ActionStart,
			Keywords:    []string{"決済", "機能", "実装"},
		},
	}}
	j := New(store, stub, nil)

	posted, err := j.Post(ctx, "p1", "u1", "決済機能の実装を開始しました")
	require.NoError(t, err)

	require.NotNil(t, posted.Result.BucketID)
	require.NotNil(t, posted.Result.BucketName)
	assert.Equal(t, "決済機能", *posted.Result.BucketName)
	assert.True(t, posted.Result.IsNewBucket)
	assert.Equal(t, *posted.Result.BucketID, posted.Comment.BucketID)
	assert.Equal(t, analyzer.ActionStart, posted.Comment.ActionType)
	assert.Equal(t, []string{"決済", "機能", "実装"}, posted.Comment.Keywords)

	buckets, err := j.Buckets(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, DefaultBucketName, buckets[0].Name)
	assert.Equal(t, "決済機能", buckets[1].Name)
}

func TestPostUsesMatchedBucket(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	b, err := store.CreateBucket(ctx, "p1", "ログイン画面")
	require.NoError(t, err)

	stub := &scriptedAnalyzer{results: map[string]analyzer.Result{
		"ログイン画面のデザインが完了": {
			BucketID:   strPtr(b.ID),
			BucketName: strPtr(b.Name),
			Sentiment:  analyzer.SentimentPositive,
			ActionType: analyzer.ActionComplete,
		},
	}}
	j := New(store, stub, nil)

	posted, err := j.Post(ctx, "p1", "u1", "ログイン画面のデザインが完了")
	require.NoError(t, err)
	assert.Equal(t, b.ID, posted.Comment.BucketID)
	assert.False(t, posted.Result.IsNewBucket)

	require.Len(t, stub.offered, 1)
	require.Len(t, stub.offered[0], 2)
	assert.Equal(t, "ログイン画面", stub.offered[0][1].Name)
	assert.Equal(t, "ログイン画面", stub.offered[0][1].NameNormalized)

	buckets, err := j.Buckets(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, buckets, 2)
}

func TestPostFallsBackToDefaultBucket(t *testing.T) {
	ctx := context.Background()
	j := New(newTestStore(), &scriptedAnalyzer{}, nil)

	posted, err := j.Post(ctx, "p1", "u1", "今日もがんばる")
	require.NoError(t, err)

	def, ok, err := j.store.DefaultBucket(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, def.ID, posted.Comment.BucketID)
	require.NotNil(t, posted.Result.BucketName)
	assert.Equal(t, DefaultBucketName, *posted.Result.BucketName)
	assert.False(t, posted.Result.IsNewBucket)
}

func TestPostRecordsIssue(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	stub := &scriptedAnalyzer{results: map[string]analyzer.Result{
		"APIでエラーが発生": {
			BucketName:  strPtr("API"),
			IsNewBucket: true,
			Sentiment:   analyzer.SentimentNegative,
			ActionType:  analyzer.ActionError,
			IssueDetected: &analyzer.Issue{
				Description: "APIでエラーが発生",
				Severity:    analyzer.SeverityWarning,
			},
		},
	}}
	j := New(store, stub, nil)

	posted, err := j.Post(ctx, "p1", "u1", "APIでエラーが発生")
	require.NoError(t, err)

	issues, err := j.OpenIssues(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, posted.Comment.ID, issues[0].SourceCommentID)
	assert.Equal(t, posted.Comment.BucketID, issues[0].BucketID)
	assert.Equal(t, analyzer.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "APIでエラーが発生", issues[0].Description)

	resolved, err := j.ResolveIssue(ctx, issues[0].ID)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedAt)

	issues, err = j.OpenIssues(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestPostAnalyzerFailure(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	boom := errors.New("boom")
	j := New(store, &scriptedAnalyzer{err: boom}, nil)

	_, err := j.Post(ctx, "p1", "u1", "text")
	require.ErrorIs(t, err, boom)

	comments, err := j.Comments(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostRequiresProject(t *testing.T) {
	j := New(newTestStore(), &scriptedAnalyzer{}, nil)
	_, err := j.Post(context.Background(), "", "u1", "text")
	assert.ErrorIs(t, err, ErrEmptyProjectID)
}

func TestPostRejectsBlankContent(t *testing.T) {
	ctx := context.Background()
	stub := &scriptedAnalyzer{}
	j := New(newTestStore(), stub, nil)

	for _, content := range []string{"", "  ", "\n\t　"} {
		_, err := j.Post(ctx, "p1", "u1", content)
		assert.ErrorIs(t, err, ErrEmptyContent, "content %q", content)
	}
	assert.Empty(t, stub.offered)

	comments, err := j.Comments(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestBucketCommentsUnknownBucket(t *testing.T) {
	j := New(newTestStore(), &scriptedAnalyzer{}, nil)
	_, err := j.BucketComments(context.Background(), "missing", 10)
	assert.ErrorIs(t, err, ErrBucketNotFound)
}

func TestPostConcurrentSameNewBucket(t *testing.T) {
	ctx := context.Background()
	const posts = 16
	results := make(map[string]analyzer.Result, posts)
	for i := 0; i < posts; i++ {
		results[fmt.Sprintf("決済機能の対応 %d", i)] = analyzer.Result{
			BucketName:  strPtr("決済機能"),
			IsNewBucket: true,
			Sentiment:   analyzer.SentimentNeutral,
			ActionType:  analyzer.ActionProgress,
		}
	}
	store := NewMemoryStore()
	j := New(store, &scriptedAnalyzer{results: results}, nil)

	postedIDs := make([]string, posts)
	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < posts; i++ {
		i := i
		g.Go(func() error {
			posted, err := j.Post(gCtx, "p1", "u1", fmt.Sprintf("決済機能の対応 %d", i))
			if err != nil {
				return err
			}
			postedIDs[i] = posted.Comment.BucketID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	buckets, err := j.Buckets(ctx, "p1")
	require.NoError(t, err)
	var named []Bucket
	for _, b := range buckets {
		if !b.IsDefault {
			named = append(named, b)
		}
	}
	require.Len(t, named, 1)
	assert.Equal(t, "決済機能", named[0].Name)
	for i, id := range postedIDs {
		assert.Equal(t, named[0].ID, id, "post %d", i)
	}

	comments, err := j.BucketComments(ctx, named[0].ID, 0)
	require.NoError(t, err)
	assert.Len(t, comments, posts)
}

func TestSeedBuckets(t *testing.T) {
	ctx := context.Background()
	j := New(newTestStore(), &scriptedAnalyzer{}, nil)

	seeded, err := j.SeedBuckets(ctx, "p1", []string{"認証", " ", "ＡＰＩ", "api", DefaultBucketName})
	require.NoError(t, err)
	require.Len(t, seeded, 4)
	assert.Equal(t, seeded[1].ID, seeded[2].ID)
	assert.True(t, seeded[3].IsDefault)

	buckets, err := j.Buckets(ctx, "p1")
	require.NoError(t, err)
	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Name
	}
	assert.Equal(t, []string{DefaultBucketName, "認証", "ＡＰＩ"}, names)
}

func TestPostWithMorphAnalyzer(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the morphological dictionary")
	}
	ctx := context.Background()
	a, err := analyzer.New(analyzer.Config{})
	require.NoError(t, err)
	j := New(newTestStore(), a, nil)

	first, err := j.Post(ctx, "p1", "u1", "決済機能の実装を開始しました")
	require.NoError(t, err)
	require.True(t, first.Result.IsNewBucket)
	require.NotNil(t, first.Result.BucketName)
	assert.Equal(t, "決済機能", *first.Result.BucketName)

	second, err := j.Post(ctx, "p1", "u2", "決済機能のテストが完了しました")
	require.NoError(t, err)
	assert.False(t, second.Result.IsNewBucket)
	assert.Equal(t, first.Comment.BucketID, second.Comment.BucketID)
	assert.Equal(t, analyzer.ActionComplete, second.Comment.ActionType)
}
