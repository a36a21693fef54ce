package analyzer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer splits text into tagged units and groups them for classification.
type Tokenizer interface {
	Tokenize(text string) (TokenizedText, error)
}

// MorphTokenizer analyzes Japanese text with kagome and the IPA dictionary.
type MorphTokenizer struct {
	t        *tokenizer.Tokenizer
	maxRunes int
}

// NewMorphTokenizer loads the IPA dictionary. maxRunes <= 0 disables the
// input length guard.
func NewMorphTokenizer(maxRunes int) (*MorphTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome: %w", err)
	}
	return &MorphTokenizer{t: t, maxRunes: maxRunes}, nil
}

// Analyze returns the raw tagged units of text.
func (m *MorphTokenizer) Analyze(text string) (tokens []Token, err error) {
	if !utf8.ValidString(text) {
		return nil, &TokenizationError{Err: ErrInvalidEncoding}
	}
	if m.maxRunes > 0 && utf8.RuneCountInString(text) > m.maxRunes {
		return nil, &TokenizationError{Err: fmt.Errorf("%w: limit %d", ErrInputTooLong, m.maxRunes)}
	}
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = &TokenizationError{Err: fmt.Errorf("analyzer panic: %v", r)}
		}
	}()
	for _, tok := range m.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		tokens = append(tokens, convertToken(tok))
	}
	return tokens, nil
}

// Tokenize runs Analyze and groups the units into nouns, verbs and surfaces.
func (m *MorphTokenizer) Tokenize(text string) (TokenizedText, error) {
	tokens, err := m.Analyze(text)
	if err != nil {
		return TokenizedText{}, err
	}
	return GroupTokens(text, tokens), nil
}

func convertToken(tok tokenizer.Token) Token {
	out := Token{Surface: tok.Surface, BaseForm: tok.Surface, POS: POSOther}
	if base, ok := tok.BaseForm(); ok && base != "" && base != "*" {
		out.BaseForm = base
	}
	if pos := tok.POS(); len(pos) > 0 {
		switch pos[0] {
		case "名詞":
			out.POS = POSNoun
		case "動詞":
			out.POS = POSVerb
		}
	}
	return out
}

// GroupTokens applies the noun filter and verb base-form rule to tokens.
func GroupTokens(text string, tokens []Token) TokenizedText {
	out := TokenizedText{
		Nouns:    []string{},
		Verbs:    []string{},
		AllWords: make([]string, 0, len(tokens)),
		RawText:  text,
	}
	for _, tok := range tokens {
		out.AllWords = append(out.AllWords, tok.Surface)
		switch tok.POS {
		case POSNoun:
			// Drop single characters and bare numbers.
			if !isNumeric(tok.Surface) && utf8.RuneCountInString(tok.Surface) > 1 {
				out.Nouns = append(out.Nouns, tok.Surface)
			}
		case POSVerb:
			base := tok.BaseForm
			if base == "" {
				base = tok.Surface
			}
			out.Verbs = append(out.Verbs, base)
		}
	}
	return out
}

// isNumeric reports whether every rune is a decimal digit or another digit
// form such as ² or ①.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.Is(unicode.No, r) {
			return false
		}
	}
	return true
}
