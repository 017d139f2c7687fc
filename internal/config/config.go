// Package config centralises all environment / flag configuration for the API.
// It should be imported only by `cmd/server` (and test code). Business-logic
// layers receive an already-built Config instance via dependency-injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Data stores. MongoURI is optional: when empty the blog runs on the
	// in-memory store.
	MongoURI string
	DBName   string

	// GitHub. Token is optional; without it requests are unauthenticated
	// and Username is used as-is instead of resolving the token's login.
	GitHubToken string
	Username    string

	// Admin panel
	AdminUsername string
	AdminPassword string
	JWTSecret     string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// How long GitHub responses (repo listings, README images) stay cached.
	CacheTTL time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		DBName:        getEnv("MONGODB_DB", "portfolio"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		Username:      getEnv("GITHUB_USERNAME", "rajanjha"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-only-secret"),
		ReadTimeout:   getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:  getDuration("WRITE_TIMEOUT_SEC", 10),
		CacheTTL:      getDuration("GITHUB_CACHE_TTL_SEC", 3600),
	}
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
