package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGODB_URI", "MONGODB_DB", "GITHUB_TOKEN", "GITHUB_USERNAME",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "JWT_SECRET",
		"READ_TIMEOUT_SEC", "WRITE_TIMEOUT_SEC", "GITHUB_CACHE_TTL_SEC",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "portfolio", cfg.DBName)
	assert.Empty(t, cfg.GitHubToken)
	assert.Equal(t, "rajanjha", cfg.Username)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GITHUB_USERNAME", "someone-else")
	t.Setenv("GITHUB_CACHE_TTL_SEC", "60")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "someone-else", cfg.Username)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestGetDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("READ_TIMEOUT_SEC", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}
