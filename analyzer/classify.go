package analyzer

import "strings"

// wordSet is the union of surfaces and verb base forms used for membership
// lookups.
type wordSet map[string]struct{}

func newWordSet(tokens TokenizedText) wordSet {
	set := make(wordSet, len(tokens.AllWords)+len(tokens.Verbs))
	for _, w := range tokens.AllWords {
		set[w] = struct{}{}
	}
	for _, v := range tokens.Verbs {
		set[v] = struct{}{}
	}
	return set
}

// score counts terms found in the word set plus terms found anywhere in the
// raw text. A term can count once for each check.
func (s termSet) score(words wordSet, text string) int {
	n := 0
	for _, term := range s.terms {
		if _, ok := words[term]; ok {
			n++
		}
	}
	for _, term := range s.terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// matches reports whether any term appears in the raw text or the word set.
func (s termSet) matches(words wordSet, text string) bool {
	for _, term := range s.terms {
		if strings.Contains(text, term) {
			return true
		}
		if _, ok := words[term]; ok {
			return true
		}
	}
	return false
}

// ClassifySentiment scores tokens against the positive and negative lists.
func (a *Analyzer) ClassifySentiment(tokens TokenizedText) Sentiment {
	return classifySentiment(a.lex, tokens, newWordSet(tokens))
}

func classifySentiment(lex *compiledLexicon, tokens TokenizedText, words wordSet) Sentiment {
	pos := lex.positive.score(words, tokens.RawText)
	neg := lex.negative.score(words, tokens.RawText)
	switch {
	case neg > pos:
		return SentimentNegative
	case pos > neg:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// ClassifyAction runs the rule cascade error > complete > waiting > start >
// progress > info.
func (a *Analyzer) ClassifyAction(tokens TokenizedText) ActionType {
	return classifyAction(a.lex, tokens, newWordSet(tokens))
}

func classifyAction(lex *compiledLexicon, tokens TokenizedText, words wordSet) ActionType {
	text := tokens.RawText
	switch {
	case lex.negative.matches(words, text):
		return ActionError
	case lex.complete.matches(words, text):
		return ActionComplete
	case lex.waiting.matches(words, text):
		return ActionWaiting
	case lex.start.matches(words, text):
		return ActionStart
	case len(tokens.Verbs) > 0:
		return ActionProgress
	default:
		return ActionInfo
	}
}

// DetectIssue flags error and negative comments. Severity is warning for
// errors and minor otherwise; the description is the leading characters of
// the raw text.
func (a *Analyzer) DetectIssue(sentiment Sentiment, action ActionType, rawText string) *Issue {
	return detectIssue(sentiment, action, rawText, a.cfg.DescriptionRunes)
}

func detectIssue(sentiment Sentiment, action ActionType, rawText string, limit int) *Issue {
	if action != ActionError && sentiment != SentimentNegative {
		return nil
	}
	severity := SeverityMinor
	if action == ActionError {
		severity = SeverityWarning
	}
	return &Issue{
		Description: truncateRunes(rawText, limit),
		Severity:    severity,
	}
}
