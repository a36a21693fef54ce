package analyzer

import "strings"

// Lexicon holds the curated word lists the classifiers score against.
// A nil category falls back to the built-in list when loaded from a file.
type Lexicon struct {
	Positive  []string `json:"positive" yaml:"positive"`
	Negative  []string `json:"negative" yaml:"negative"`
	Waiting   []string `json:"waiting" yaml:"waiting"`
	Start     []string `json:"start" yaml:"start"`
	Complete  []string `json:"complete" yaml:"complete"`
	StopNouns []string `json:"stopNouns" yaml:"stopNouns"`
}

func defaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			// 完了系
			"完了", "できた", "終わった", "直った", "解決", "成功", "OK", "おk",
			"終了", "完成", "達成", "クリア", "解消", "修正完了", "対応完了",
			// 前進
			"進んだ", "進む", "決まった", "決まる", "うまくいった", "うまくいく",
			// 状態
			"良い", "いい", "順調", "問題なし", "大丈夫",
		},
		Negative: []string{
			// エラー系
			"エラー", "バグ", "問題", "失敗", "できない", "動かない", "落ちた",
			"クラッシュ", "止まった", "フリーズ", "例外", "exception", "error",
			// 困難系
			"難しい", "わからない", "不明", "困った", "詰まった", "ハマった",
			// 否定
			"ダメ", "無理", "厳しい", "やばい",
		},
		Waiting: []string{
			"待ち", "待機", "保留", "ペンディング", "確認中", "調査中", "検討中",
			"返事待ち", "レビュー待ち", "承認待ち",
		},
		Start: []string{
			"開始", "着手", "始める", "始めた", "スタート", "取り掛かる",
			"やる", "やります", "対応する",
		},
		Complete: []string{
			"完了", "終了", "終わった", "できた", "完成", "リリース", "納品",
			"提出", "送った", "送信", "提出済み",
		},
		StopNouns: []string{"こと", "もの", "ところ", "よう", "ため"},
	}
}

// DefaultLexicon returns a copy of the built-in word lists.
func DefaultLexicon() Lexicon {
	return defaultLexicon().clone()
}

func (l Lexicon) withDefaults() Lexicon {
	defaults := defaultLexicon()
	return Lexicon{
		Positive:  pickStrings(l.Positive, defaults.Positive),
		Negative:  pickStrings(l.Negative, defaults.Negative),
		Waiting:   pickStrings(l.Waiting, defaults.Waiting),
		Start:     pickStrings(l.Start, defaults.Start),
		Complete:  pickStrings(l.Complete, defaults.Complete),
		StopNouns: pickStrings(l.StopNouns, defaults.StopNouns),
	}
}

func (l Lexicon) clone() Lexicon {
	return Lexicon{
		Positive:  cloneStrings(l.Positive),
		Negative:  cloneStrings(l.Negative),
		Waiting:   cloneStrings(l.Waiting),
		Start:     cloneStrings(l.Start),
		Complete:  cloneStrings(l.Complete),
		StopNouns: cloneStrings(l.StopNouns),
	}
}

func pickStrings(custom, fallback []string) []string {
	if custom == nil {
		return cloneStrings(fallback)
	}
	return cloneStrings(custom)
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// termSet is an ordered, deduplicated dictionary category.
type termSet struct {
	terms []string
	index map[string]struct{}
}

func newTermSet(words []string) termSet {
	set := termSet{
		terms: make([]string, 0, len(words)),
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := set.index[w]; ok {
			continue
		}
		set.index[w] = struct{}{}
		set.terms = append(set.terms, w)
	}
	return set
}

func (s termSet) has(word string) bool {
	_, ok := s.index[word]
	return ok
}

// compiledLexicon is the immutable form injected into the classifiers.
type compiledLexicon struct {
	positive  termSet
	negative  termSet
	waiting   termSet
	start     termSet
	complete  termSet
	stopNouns termSet
}

func compileLexicon(l Lexicon) *compiledLexicon {
	return &compiledLexicon{
		positive:  newTermSet(l.Positive),
		negative:  newTermSet(l.Negative),
		waiting:   newTermSet(l.Waiting),
		start:     newTermSet(l.Start),
		complete:  newTermSet(l.Complete),
		stopNouns: newTermSet(l.StopNouns),
	}
}
