package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultConfigPath  = "config.json"
	defaultProjectID   = "default"
	defaultLogLevel    = "info"
	maxDefaultParallel = 8
)

// Env is the process environment of the CLI.
type Env struct {
	ConfigPath  string
	LexiconPath string
	LogLevel    string
	Parallel    int
	ProjectID   string
}

// Load reads the FLOWJOURNAL_* variables after loading .env files. With no
// files the optional ./.env is tried and a missing one is ignored; explicit
// files must exist. Variables already set in the process win over .env
// entries.
func Load(files ...string) (*Env, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
		return fromEnv(), nil
	}
	if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return fromEnv(), nil
}

func fromEnv() *Env {
	parallel := getEnvInt("FLOWJOURNAL_PARALLEL", defaultParallel())
	if parallel < 1 {
		parallel = 1
	}
	return &Env{
		ConfigPath:  getEnv("FLOWJOURNAL_CONFIG", defaultConfigPath),
		LexiconPath: getEnv("FLOWJOURNAL_LEXICON", ""),
		LogLevel:    strings.ToLower(getEnv("FLOWJOURNAL_LOG_LEVEL", defaultLogLevel)),
		Parallel:    parallel,
		ProjectID:   getEnv("FLOWJOURNAL_PROJECT", defaultProjectID),
	}
}

func defaultParallel() int {
	return max(min(runtime.NumCPU(), maxDefaultParallel), 1)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
