package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Env Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration. Driver is "postgres" or "sqlite";
	// sqlite is the development and test default.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration (session revocation, login rate limiting).
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Media storage. Uploads land under MediaRoot and are served at
	// /media/; when S3Bucket is set uploads go to S3 instead.
	MediaRoot string
	S3Bucket  string
	AWSRegion string

	// Logging
	LogLevel string
}

// LoadConfig builds a Config from environment variables. Development
// and test get working defaults; production refuses to start without
// its required variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:           GetEnvironment(),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "recipebook"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		DBPath:        getEnv("DB_PATH", "recipebook.db"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		MediaRoot:     getEnv("MEDIA_ROOT", "media"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = n
	}

	if cfg.JWTSecret == "" && !IsProduction() {
		cfg.JWTSecret = "dev-secret"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
