package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ConfigFileName is the default configuration file name
const ConfigFileName = "modlift.yaml"

// Loader handles loading and parsing of modlift configuration
type Loader struct {
	workDir string
	viper   *viper.Viper
}

// NewLoader creates a new configuration loader for the given working directory
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
}

// Load reads and parses the modlift.yaml configuration file
func (l *Loader) Load() (*Config, error) {
	configPath := filepath.Join(l.workDir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &ConfigNotFoundError{Path: configPath}
	}

	l.viper.SetConfigFile(configPath)
	l.viper.SetConfigType("yaml")

	defaults := DefaultConfig()
	l.viper.SetDefault("version", defaults.Version)
	l.viper.SetDefault("scenarios.dir", defaults.Scenarios.Dir)
	l.viper.SetDefault("logging.debug", defaults.Logging.Debug)
	l.viper.SetDefault("run.lock", defaults.Run.Lock)

	if err := l.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &cfg, nil
}

// LoadOrDefault loads modlift.yaml from workDir, falling back to defaults
// when the file does not exist. Any other failure is surfaced.
func LoadOrDefault(workDir string) (*Config, error) {
	cfg, err := NewLoader(workDir).Load()
	if err != nil {
		var notFound *ConfigNotFoundError
		if errors.As(err, &notFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
