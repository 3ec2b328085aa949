// Package config carries the runtime settings for the CLI.
//
// Settings come from built-in defaults and command-line flags only. The
// tool deliberately reads no configuration files and no environment
// variables: every run starts from the same state.
package config

import "github.com/spf13/viper"

// Config holds the resolved settings for one run.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`

	// LogFormat is "text" or "json".
	LogFormat string `mapstructure:"log-format"`

	// DefaultName is the fallback project name when no directory is given.
	DefaultName string `mapstructure:"default-name"`

	// TemplateRoot overrides where template directories are looked up.
	// Empty means "next to the installed binary".
	TemplateRoot string `mapstructure:"template-root"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("default-name", "my-app")
	v.SetDefault("template-root", "")
}

// Load resolves the configuration from defaults plus any values the caller
// set into the viper instance (typically flag values).
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
