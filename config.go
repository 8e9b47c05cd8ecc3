package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	LogJSON    bool   `mapstructure:"log_json" yaml:"log_json"`
	Swatch     bool   `mapstructure:"swatch" yaml:"swatch"`
	BufferSize int    `mapstructure:"buffer_size" yaml:"buffer_size"` // stdout buffer, bytes
	ConfigFile string `mapstructure:"-" yaml:"config_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LogJSON:    false,
		Swatch:     false,
		BufferSize: 4096,
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// STREXT_* environment variables, in increasing order of precedence.
// An empty path searches for strext.yaml in the working directory and
// $HOME/.strext; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_json", cfg.LogJSON)
	v.SetDefault("swatch", cfg.Swatch)
	v.SetDefault("buffer_size", cfg.BufferSize)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("strext")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.strext")
	}
	v.SetEnvPrefix("STREXT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read the configuration file %s", path)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode the configuration")
	}
	if cfg.BufferSize <= 0 {
		return nil, errors.Errorf("buffer_size must be positive, got %d", cfg.BufferSize)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}
