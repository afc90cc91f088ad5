package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/storage"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
	Display DisplayConfig `mapstructure:"display"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects where the document lives.
type StorageConfig struct {
	Backend storage.Kind `mapstructure:"backend"`
	Path    string       `mapstructure:"path"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("storage.backend", string(storage.KindFile))
	v.SetDefault("storage.path", DefaultDataDir)
	v.SetDefault("display.currency", "₱")
}

// Load reads the configuration from v, expands paths and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Storage.Backend = storage.Kind(strings.ToLower(string(cfg.Storage.Backend)))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Storage.Backend {
	case storage.KindFile, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("%w: storage backend %q", common.ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Backend != storage.KindMemory && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("%w: storage.path", common.ErrMissingConfig)
	}

	return nil
}
