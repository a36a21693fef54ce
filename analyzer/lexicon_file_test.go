package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLexicon_EmptyPath(t *testing.T) {
	lex, fromFile, err := LoadLexicon("")
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, DefaultLexicon(), lex)
}

func TestLoadLexicon_JSONOverridesPerCategory(t *testing.T) {
	path := writeFile(t, "lexicon.json", `{"positive": ["神"], "stopNouns": []}`)

	lex, fromFile, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.True(t, fromFile)

	defaults := DefaultLexicon()
	assert.Equal(t, []string{"神"}, lex.Positive)
	assert.Empty(t, lex.StopNouns, "an explicit empty list clears the category")
	assert.Equal(t, defaults.Negative, lex.Negative)
	assert.Equal(t, defaults.Complete, lex.Complete)
}

func TestLoadLexicon_YAML(t *testing.T) {
	path := writeFile(t, "lexicon.yml", "waiting:\n  - 様子見\n  - 保留\n")

	lex, _, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"様子見", "保留"}, lex.Waiting)
	assert.Equal(t, DefaultLexicon().Start, lex.Start)
}

func TestLoadLexicon_Errors(t *testing.T) {
	_, _, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.json", "{not json")
	_, _, err = LoadLexicon(bad)
	assert.Error(t, err)
}

func TestEnsureLexiconFile(t *testing.T) {
	for _, name := range []string{"lexicon.json", "lexicon.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "conf", name)

			created, err := EnsureLexiconFile(path)
			require.NoError(t, err)
			assert.True(t, created)

			lex, fromFile, err := LoadLexicon(path)
			require.NoError(t, err)
			assert.True(t, fromFile)
			assert.Equal(t, DefaultLexicon(), lex)

			created, err = EnsureLexiconFile(path)
			require.NoError(t, err)
			assert.False(t, created, "existing file is left alone")
		})
	}
}

func TestEnsureLexiconFile_EmptyPath(t *testing.T) {
	created, err := EnsureLexiconFile("  ")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCompileLexicon_DedupAndTrim(t *testing.T) {
	lex := compileLexicon(Lexicon{Positive: []string{" 完了 ", "完了", "", "OK"}})

	assert.Equal(t, []string{"完了", "OK"}, lex.positive.terms)
	assert.True(t, lex.positive.has("OK"))
	assert.False(t, lex.negative.has("OK"))
}
