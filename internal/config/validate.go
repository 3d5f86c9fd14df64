package config

import (
	"fmt"
	"strings"

	apperrors "github.com/cadre-oss/pyvengers/internal/errors"
)

// Validate checks a loaded configuration
func Validate(cfg *Config) error {
	var errors []string

	if strings.TrimSpace(cfg.Data.File) == "" {
		errors = append(errors, "data.file is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		errors = append(errors, fmt.Sprintf("invalid logging level: %s", cfg.Logging.Level))
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validFormats[cfg.Logging.Format] {
		errors = append(errors, fmt.Sprintf("invalid logging format: %s", cfg.Logging.Format))
	}

	if len(errors) > 0 {
		return apperrors.New(apperrors.CodeConfigInvalid, "config validation failed: "+strings.Join(errors, "; ")).
			WithSuggestion("logging.level must be debug, info, warn or error; logging.format must be text or json")
	}
	return nil
}
