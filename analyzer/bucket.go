package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// leadingNamePattern captures a name at the very start of a comment that is
// followed by a possessive or listing delimiter, e.g. 「ログイン画面の…」,
// 「決済、…」 or "Checkout's …".
var leadingNamePattern = regexp.MustCompile(`^([^\s\x{3000}、。の,，.'’]+)(?:[、の,，]|['’]s\b)`)

// ExtractCandidates returns possible bucket names in priority order. The
// first entry is proposed as the new bucket name when nothing matches.
func (a *Analyzer) ExtractCandidates(tokens TokenizedText) []string {
	return extractCandidates(a.lex, tokens, a.cfg.MinCandidateRunes)
}

func extractCandidates(lex *compiledLexicon, tokens TokenizedText, minRunes int) []string {
	var candidates []string
	if m := leadingNamePattern.FindStringSubmatch(tokens.RawText); m != nil {
		candidates = append(candidates, m[1])
	}
	for _, noun := range tokens.Nouns {
		if utf8.RuneCountInString(noun) < minRunes || lex.stopNouns.has(noun) {
			continue
		}
		candidates = append(candidates, noun)
	}
	return candidates
}

// FindMatch returns the first bucket, in the given order, that matches the
// first candidate that matches anything. A bucket matches when its
// normalized name equals the normalized candidate or either contains the
// other. There is no similarity ranking.
func FindMatch(candidates []string, buckets []Bucket) (Bucket, bool) {
	for _, candidate := range candidates {
		normalized := Normalize(candidate)
		if normalized == "" {
			continue
		}
		for _, b := range buckets {
			// An empty name would be a substring of every candidate.
			if b.NameNormalized == "" {
				continue
			}
			if b.NameNormalized == normalized {
				return b, true
			}
			if strings.Contains(b.NameNormalized, normalized) || strings.Contains(normalized, b.NameNormalized) {
				return b, true
			}
		}
	}
	return Bucket{}, false
}
