// Package config loads process configuration from the environment. A .env
// file in the working directory is read first when present; variables already
// set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"fitcoach/internal/domain"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

// Config is the process configuration.
type Config struct {
	Port string

	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ModelID         string

	Store         string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string

	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the configuration. A missing AWS_REGION is a
// *domain.ConfigurationError.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		Port:            env("PORT", "5000"),
		Region:          os.Getenv("AWS_REGION"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		ModelID:         os.Getenv("BEDROCK_MODEL_ID"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   env("MONGO_DATABASE", "fitness_ai"),
		LogLevel:        env("LOG_LEVEL", "info"),
		LogFormat:       env("LOG_FORMAT", "json"),
		CORSOrigins:     splitList(env("CORS_ORIGINS", "https://*,http://*")),
	}

	if c.Region == "" {
		return Config{}, &domain.ConfigurationError{Key: "AWS_REGION"}
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q", c.Port)
	}

	c.Store = strings.ToLower(os.Getenv("STORE"))
	if c.Store == "" {
		c.Store = inferStore(c)
	}
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return Config{}, &domain.ConfigurationError{Key: "DATABASE_URL"}
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return Config{}, &domain.ConfigurationError{Key: "MONGO_URI"}
		}
	case StoreMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE %q", c.Store)
	}
	return c, nil
}

func inferStore(c Config) string {
	switch {
	case c.DatabaseURL != "":
		return StorePostgres
	case c.MongoURI != "":
		return StoreMongo
	}
	return StoreMemory
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
