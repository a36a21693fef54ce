package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FLOWJOURNAL_CONFIG",
		"FLOWJOURNAL_LEXICON",
		"FLOWJOURNAL_LOG_LEVEL",
		"FLOWJOURNAL_PARALLEL",
		"FLOWJOURNAL_PROJECT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	env, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "config.json", env.ConfigPath)
	assert.Empty(t, env.LexiconPath)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, "default", env.ProjectID)
	assert.GreaterOrEqual(t, env.Parallel, 1)
	assert.LessOrEqual(t, env.Parallel, 8)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLOWJOURNAL_CONFIG", "/etc/flowjournal/config.json")
	t.Setenv("FLOWJOURNAL_LEXICON", "lexicon.yaml")
	t.Setenv("FLOWJOURNAL_LOG_LEVEL", "DEBUG")
	t.Setenv("FLOWJOURNAL_PARALLEL", "3")
	t.Setenv("FLOWJOURNAL_PROJECT", "alpha")

	env, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Env{
		ConfigPath:  "/etc/flowjournal/config.json",
		LexiconPath: "lexicon.yaml",
		LogLevel:    "debug",
		Parallel:    3,
		ProjectID:   "alpha",
	}, env)
}

func TestLoadInvalidParallel(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLOWJOURNAL_PARALLEL", "lots")
	env, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultParallel(), env.Parallel)

	t.Setenv("FLOWJOURNAL_PARALLEL", "-2")
	env, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 1, env.Parallel)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	require.NoError(t, os.Unsetenv("FLOWJOURNAL_PROJECT"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FLOWJOURNAL_PROJECT=from-file\n"), 0o644))

	env, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", env.ProjectID)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	env, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
	assert.Nil(t, env)
}
