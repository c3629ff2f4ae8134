package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/muurk/breakeven/internal/logging"
)

// EnvPrefix is prepended to every setting's environment variable.
const EnvPrefix = "BREAKEVEN"

// Config holds the runtime settings for one run
type Config struct {
	NoColorDevices bool   `mapstructure:"no_color_devices"`
	ClearOnSubmit  bool   `mapstructure:"clear_on_submit"`
	LogLevel       string `mapstructure:"log_level"`
	LogFile        string `mapstructure:"log_file"`
}

// RandomizeColors reports whether devices get random colors
func (c *Config) RandomizeColors() bool {
	return !c.NoColorDevices
}

// flagKeys maps setting keys to the command-line flags bound to them. The
// other settings come from the environment only.
var flagKeys = map[string]string{
	"no_color_devices": "no-color-devices",
}

// Load merges defaults, BREAKEVEN_* environment variables and any of the
// flags above found in flags. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if !validLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", cfg.LogLevel)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("no_color_devices", false)
	v.SetDefault("clear_on_submit", false)
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", logging.DefaultLogFile)
}

func validLevel(level string) bool {
	switch level {
	case "", "debug", "info", "warn", "error":
		return true
	}
	return false
}
