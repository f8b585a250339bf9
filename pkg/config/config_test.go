package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultSessionSecret, cfg.SessionSecret)
	assert.Equal(t, "output", cfg.DataDir)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestArtifactPaths(t *testing.T) {
	cfg := &Config{
		DataDir:       "output",
		Cluster1File:  "cluster1.json",
		Cluster2File:  "cluster2.json",
		UserStatsFile: "user_stats.csv",
	}

	assert.Equal(t, "output/cluster1.json", cfg.Cluster1Path())
	assert.Equal(t, "output/cluster2.json", cfg.Cluster2Path())
	assert.Equal(t, "output/user_stats.csv", cfg.UserStatsPath())
}

func TestValidateRejectsPlaceholderSecretInProduction(t *testing.T) {
	cfg := &Config{
		Port:          "8080",
		Env:           "production",
		SessionSecret: DefaultSessionSecret,
		DataDir:       "output",
	}
	assert.Error(t, cfg.Validate())

	cfg.SessionSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{Env: "development", SessionSecret: "s", DataDir: "output"}
	assert.Error(t, cfg.Validate(), "empty port must fail")

	cfg = &Config{Port: "8080", Env: "development", SessionSecret: "s"}
	assert.Error(t, cfg.Validate(), "empty data dir must fail")
}
