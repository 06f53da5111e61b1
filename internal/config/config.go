// Package config holds run settings unmarshalled from Viper: command-line
// flags, GFA2FA_* environment variables and an optional config file.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GFA2FA_THREADS.
const EnvPrefix = "GFA2FA"

// Config is the root-level settings struct.
type Config struct {
	// GFA input path, "-" for stdin
	Input string `mapstructure:"input"`

	// FASTA output path, "-" for stdout
	Output string `mapstructure:"output"`

	// paths resolved concurrently; 0 means one per CPU
	Threads int `mapstructure:"threads"`

	// debug | info | warn | error
	LogLevel string `mapstructure:"log-level"`

	// only errors are logged
	Quiet bool `mapstructure:"quiet"`
}

// Defaults installs default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("threads", 1)
	v.SetDefault("log-level", "info")
	v.SetDefault("quiet", false)
}

// Load reads the optional config file into v and unmarshals the merged
// settings. Flags bound to v take precedence over the environment, which
// takes precedence over the file.
func Load(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", c.Threads)
	}
	if c.Threads == 0 {
		c.Threads = runtime.NumCPU()
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "warning":
		c.LogLevel = "warn"
	case "":
		c.LogLevel = "info"
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Input == "" {
		c.Input = "-"
	}
	if c.Output == "" {
		c.Output = "-"
	}
	return nil
}
