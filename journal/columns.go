package journal

// ColumnCandidates lists header names tried, case-insensitively, when
// auto-detecting CSV/TSV columns.
type ColumnCandidates struct {
	Content []string `json:"content"`
	User    []string `json:"user"`
	Project []string `json:"project"`
}

func defaultColumnCandidates() ColumnCandidates {
	return ColumnCandidates{
		Content: []string{"content", "comment", "text", "message", "body", "本文", "コメント", "内容"},
		User:    []string{"user_id", "user", "author", "投稿者", "ユーザー"},
		Project: []string{"project_id", "project", "プロジェクト"},
	}
}

// DefaultColumnCandidates returns the built-in detection candidates.
func DefaultColumnCandidates() ColumnCandidates {
	return defaultColumnCandidates().clone()
}

// withDefaults fills nil fields from the built-in candidates so callers can
// override only the parts they need.
func (c ColumnCandidates) withDefaults() ColumnCandidates {
	defaults := defaultColumnCandidates()
	return ColumnCandidates{
		Content: pickStrings(c.Content, defaults.Content),
		User:    pickStrings(c.User, defaults.User),
		Project: pickStrings(c.Project, defaults.Project),
	}
}

func (c ColumnCandidates) clone() ColumnCandidates {
	return ColumnCandidates{
		Content: cloneStrings(c.Content),
		User:    cloneStrings(c.User),
		Project: cloneStrings(c.Project),
	}
}

func pickStrings(custom, fallback []string) []string {
	if custom == nil {
		return cloneStrings(fallback)
	}
	return cloneStrings(custom)
}
