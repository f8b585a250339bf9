package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the placeholder cookie-signing key used for sample
// data. It must be replaced via SESSION_SECRET in any real deployment.
const DefaultSessionSecret = "placeholder_key_for_sample_data"

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Session
	SessionSecret string

	// Artifacts (produced by the upstream analysis pipeline)
	DataDir       string
	Cluster1File  string
	Cluster2File  string
	UserStatsFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		DataDir:       getEnv("DATA_DIR", "output"),
		Cluster1File:  getEnv("CLUSTER1_FILE", "cluster1.json"),
		Cluster2File:  getEnv("CLUSTER2_FILE", "cluster2.json"),
		UserStatsFile: getEnv("USER_STATS_FILE", "user_stats.csv"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.IsProduction() && c.SessionSecret == DefaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must not be the placeholder value in production")
	}
	return nil
}

// Cluster1Path returns the full path of the first cluster-result document
func (c *Config) Cluster1Path() string {
	return filepath.Join(c.DataDir, c.Cluster1File)
}

// Cluster2Path returns the full path of the second cluster-result document
func (c *Config) Cluster2Path() string {
	return filepath.Join(c.DataDir, c.Cluster2File)
}

// UserStatsPath returns the full path of the user statistics table
func (c *Config) UserStatsPath() string {
	return filepath.Join(c.DataDir, c.UserStatsFile)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
