package analyzer

import (
	"errors"
	"fmt"
	"log"
)

// Analyzer runs the comment pipeline: tokenize, classify sentiment and
// action, match a bucket, detect an issue. It holds no mutable state after
// construction and is safe for concurrent use.
type Analyzer struct {
	tokenizer Tokenizer
	lex       *compiledLexicon
	cfg       Config
	logger    *log.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithTokenizer replaces the default kagome tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(a *Analyzer) {
		a.tokenizer = t
	}
}

// WithLexicon replaces the lexicon otherwise read from Config.LexiconPath.
func WithLexicon(lex Lexicon) Option {
	return func(a *Analyzer) {
		a.lex = compileLexicon(lex)
	}
}

// WithLogger sets the logger used during construction.
func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New builds an Analyzer from cfg. Unless overridden, the lexicon is loaded
// from cfg.LexiconPath (defaults when empty) and the tokenizer is kagome.
func New(cfg Config, opts ...Option) (*Analyzer, error) {
	cfg.ApplyDefaults()
	a := &Analyzer{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.lex == nil {
		lex, fromFile, err := LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		if fromFile {
			a.logf("Loaded lexicon from %s", cfg.LexiconPath)
		} else {
			a.logf("Using built-in lexicon")
		}
		a.lex = compileLexicon(lex)
	}
	if a.tokenizer == nil {
		t, err := NewMorphTokenizer(cfg.MaxInputRunes)
		if err != nil {
			return nil, err
		}
		a.tokenizer = t
	}
	return a, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Tokenize exposes the configured tokenizer.
func (a *Analyzer) Tokenize(text string) (TokenizedText, error) {
	return a.tokenizer.Tokenize(text)
}

// Analyze classifies text against the existing buckets. Buckets are read
// in order and never modified. A tokenizer failure is returned as a
// *TokenizationError with a zero Result.
func (a *Analyzer) Analyze(text string, buckets []Bucket) (Result, error) {
	tokens, err := a.tokenizer.Tokenize(text)
	if err != nil {
		var tokErr *TokenizationError
		if errors.As(err, &tokErr) {
			return Result{}, err
		}
		return Result{}, &TokenizationError{Err: err}
	}
	return a.analyzeTokens(tokens, buckets), nil
}

func (a *Analyzer) analyzeTokens(tokens TokenizedText, buckets []Bucket) Result {
	words := newWordSet(tokens)
	sentiment := classifySentiment(a.lex, tokens, words)
	action := classifyAction(a.lex, tokens, words)

	candidates := extractCandidates(a.lex, tokens, a.cfg.MinCandidateRunes)
	res := Result{
		Sentiment:     sentiment,
		ActionType:    action,
		Keywords:      keywords(tokens, a.cfg.KeywordNouns, a.cfg.KeywordVerbs),
		Nouns:         tokens.Nouns,
		Verbs:         tokens.Verbs,
		IssueDetected: detectIssue(sentiment, action, tokens.RawText, a.cfg.DescriptionRunes),
	}
	if matched, ok := FindMatch(candidates, buckets); ok {
		id, name := matched.ID, matched.Name
		res.BucketID = &id
		res.BucketName = &name
	} else if len(candidates) > 0 {
		name := candidates[0]
		res.BucketName = &name
		res.IsNewBucket = true
	}
	return res
}

// keywords joins the leading nouns and verbs, dropping repeats.
func keywords(tokens TokenizedText, nouns, verbs int) []string {
	out := make([]string, 0, nouns+verbs)
	seen := make(map[string]struct{}, nouns+verbs)
	add := func(words []string, limit int) {
		if len(words) > limit {
			words = words[:limit]
		}
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	add(tokens.Nouns, nouns)
	add(tokens.Verbs, verbs)
	return out
}

func (a *Analyzer) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
