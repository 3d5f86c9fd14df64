package config

import (
	"os"
	"path/filepath"
	"regexp"

	apperrors "github.com/cadre-oss/pyvengers/internal/errors"
	"gopkg.in/yaml.v3"
)

var (
	envPattern = regexp.MustCompile(`\$\{env\.([^}]+)\}`)
	varPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
)

// Load loads pyvengers.yaml from dir
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile loads the configuration at path. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, apperrors.Wrap(apperrors.CodeConfigInvalid, "failed to read config file", err)
	}

	content = []byte(interpolateEnv(string(content)))

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeConfigInvalid, err, "failed to parse %s", path).
			WithSuggestion("Check the YAML syntax of the config file")
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadRequired loads the configuration at path, which must exist. Used when
// the caller named the file outright.
func LoadRequired(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeConfigInvalid, err, "config file %s not found", path).
			WithSuggestion("Check the --config path or omit it to use ./" + FileName)
	}
	return LoadFile(path)
}

// interpolateEnv replaces ${env.VAR} and ${VAR} with environment values
func interpolateEnv(content string) string {
	content = envPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := envPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // keep original if not found
	})

	content = varPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := varPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return content
}

func defaultConfig() *Config {
	return &Config{
		Name: DefaultName,
		Data: DataConfig{
			File: DefaultDataFile,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Data.File == "" {
		cfg.Data.File = DefaultDataFile
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
