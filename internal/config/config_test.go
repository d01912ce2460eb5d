package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 1024, cfg.LLM.ScoreMaxTokens)
	assert.Equal(t, 1500, cfg.LLM.LetterMaxTokens)
	assert.Equal(t, "jobtrack.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_MODEL", "claude-3-haiku-20240307")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.LLM.Model)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_YAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-test-123")

	yaml := `
server:
  port: 7070
llm:
  api_key: "${TEST_LLM_KEY}"
  score_max_tokens: 2048
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "sk-test-123", cfg.LLM.APIKey)
	assert.Equal(t, 2048, cfg.LLM.ScoreMaxTokens)
	// Untouched sections keep their defaults
	assert.Equal(t, 1500, cfg.LLM.LetterMaxTokens)
}
