package cli

import (
	"os"

	"github.com/cadre-oss/pyvengers/internal/config"
	"github.com/cadre-oss/pyvengers/internal/record"
	"github.com/cadre-oss/pyvengers/internal/telemetry"
	"github.com/spf13/viper"
)

// app bundles what every command needs. The data file path is resolved
// once here and fixed for the rest of the process.
type app struct {
	cfg    *config.Config
	logger *telemetry.Logger
	store  *record.Store
}

// loadConfig resolves the effective configuration and reports which file,
// if any, it was read from.
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		used string
		err  error
	)
	if cfgFile != "" {
		cfg, err = config.LoadRequired(cfgFile)
		used = cfgFile
	} else {
		path := configPath()
		cfg, err = config.LoadFile(path)
		if _, statErr := os.Stat(path); statErr == nil {
			used = path
		}
	}
	if err != nil {
		return nil, "", err
	}

	// flag > env > file
	if override := viper.GetString("data_file"); override != "" {
		cfg.Data.File = override
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, used, nil
}

func newApp() (*app, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	logger := telemetry.NewLogger(level, cfg.Logging.Format)
	if cfg.Logging.File != "" {
		if err := logger.WithFile(cfg.Logging.File); err != nil {
			return nil, err
		}
	}
	logger = logger.WithSession()
	logger.Debug("using data file", "path", cfg.Data.File)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  record.NewStore(cfg.Data.File, logger),
	}, nil
}

func (a *app) Close() error {
	return a.logger.Close()
}
