package config

import "fmt"

// Config is the modlift.yaml schema.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Scenarios ScenariosConfig `yaml:"scenarios" mapstructure:"scenarios"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
	Run       RunConfig       `yaml:"run" mapstructure:"run"`
}

// ScenariosConfig locates scenario files.
type ScenariosConfig struct {
	// Dir is where `modlift run` looks for scenario files when none are
	// given on the command line.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LoggingConfig configures console and rotated file logging.
type LoggingConfig struct {
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
	FileEnabled *bool  `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	Dir         string `yaml:"dir,omitempty" mapstructure:"dir"`
	MaxSizeMB   int    `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	MaxAgeDays  int    `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	MaxBackups  int    `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// RunConfig configures run behavior.
type RunConfig struct {
	// Lock holds an exclusive file lock for the duration of a run so
	// concurrent runs do not interleave container sessions.
	Lock bool `yaml:"lock" mapstructure:"lock"`
}

// DefaultConfig returns the configuration used when no modlift.yaml exists
// or a field is unset.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Scenarios: ScenariosConfig{
			Dir: "scenarios",
		},
		Logging: LoggingConfig{
			Debug: false,
		},
		Run: RunConfig{
			Lock: true,
		},
	}
}

// Validate rejects configurations the runner cannot honor.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.Scenarios.Dir == "" {
		return fmt.Errorf("scenarios.dir must not be empty")
	}
	return nil
}

// ConfigNotFoundError indicates no modlift.yaml was found.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}
