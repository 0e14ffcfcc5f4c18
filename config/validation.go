package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable for the
// current environment. Production must be explicit about everything
// that has no safe default.
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBUser == "" {
			errs = append(errs, "DB_USER is required for the postgres driver")
		}
		if cfg.DBPassword == "" {
			errs = append(errs, "DB_PASSWORD is required for the postgres driver")
		}
	case "sqlite":
		if cfg.DBPath == "" {
			errs = append(errs, "DB_PATH is required for the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}

	if cfg.Env == Production {
		if cfg.JWTSecret == "" {
			errs = append(errs, "JWT_SECRET is required in production")
		}
		if cfg.RedisHost == "" && cfg.RedisURL == "" {
			errs = append(errs, "REDIS_HOST or REDIS_URL is required in production")
		}
		if cfg.DBDriver != "postgres" {
			errs = append(errs, "production requires the postgres driver")
		}
	}

	if cfg.MediaRoot == "" && cfg.S3Bucket == "" {
		errs = append(errs, "MEDIA_ROOT or S3_BUCKET_NAME must be set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
