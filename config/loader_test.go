package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./matchwire-data", cfg.DataDir)
	assert.Equal(t, "http://localhost:11434/v1", cfg.AIHost)
	assert.Equal(t, 20, cfg.MaxCandidates)
	assert.InDelta(t, 0.3, cfg.MinSimilarity, 0.001)
	assert.False(t, cfg.MockAI)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MATCHWIRE_AI_HOST", "http://models.internal:8000/v1")
	t.Setenv("MATCHWIRE_MAX_CANDIDATES", "5")
	t.Setenv("MATCHWIRE_MOCK_AI", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://models.internal:8000/v1", cfg.AIHost)
	assert.Equal(t, 5, cfg.MaxCandidates)
	assert.True(t, cfg.MockAI)
	// Untouched keys keep their defaults
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchwire.yaml")
	contents := []byte("log_level: debug\nmodel_version: v7\nmin_similarity: 0.5\n")
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	t.Setenv("MATCHWIRE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "v7", cfg.ModelVersion)
	assert.InDelta(t, 0.5, cfg.MinSimilarity, 0.001)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchwire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	t.Setenv("MATCHWIRE_CONFIG", path)
	t.Setenv("MATCHWIRE_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("similarity out of range", func(t *testing.T) {
		t.Setenv("MATCHWIRE_MIN_SIMILARITY", "2.0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing data dir", func(t *testing.T) {
		t.Setenv("MATCHWIRE_DATA_DIR", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestAIConfig(t *testing.T) {
	cfg := New()
	aiCfg := cfg.AIConfig()

	assert.Equal(t, cfg.AIHost, aiCfg.EmbeddingHost)
	assert.Equal(t, cfg.AIHost, aiCfg.AdvisorHost)
	assert.Equal(t, cfg.EmbeddingModel, aiCfg.EmbeddingModel)
	assert.Equal(t, cfg.AdvisorModel, aiCfg.AdvisorModel)
	assert.Equal(t, cfg.MinSeverity, aiCfg.MinSeverity)
}
