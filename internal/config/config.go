package config

import (
	"os"

	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = LogLevelInfo
	DefaultLogFormat = LogFormatConsole
	DefaultEnvPrefix = "ERRORBAG"

	configEnv  = "ERRORBAG_CONFIG"
	configName = "errorbag"
)

type Config struct {
	LogLevel  LogLevel  `mapstructure:"log_level"`
	LogFormat LogFormat `mapstructure:"log_format"`
	Debug     bool      `mapstructure:"debug"`
	Verbose   bool      `mapstructure:"verbose"`
	Strict    bool      `mapstructure:"strict"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"debug":      "debug",
	"verbose":    "verbose",
	"strict":     "strict",
}

// RegisterFlags defines the configuration flags on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a TOML configuration file")
	fs.String("log-level", string(DefaultLogLevel), "Log level (debug, info, warning, error)")
	fs.String("log-format", string(DefaultLogFormat), "Log format (console, json)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.Bool("strict", false, "Exit with a non-zero status when any error is collected")
}

// Load merges defaults, the optional config file, the environment and the
// flags in fs, later sources winning. fs must have been parsed already.
func Load(fs *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	v := viper.New()
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("log_format", string(DefaultLogFormat))
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("strict", false)

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	path := o.configPath
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path == "" {
		path = os.Getenv(configEnv)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	// Only flags set on the command line override file and environment
	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	return config, nil
}

// Validate checks every field and collects each problem under its own code,
// with the rejected value as data. The returned bag is empty when the
// configuration is valid.
func (c *Config) Validate() *errorbag.Bag {
	b := errorbag.New()

	if !c.LogLevel.IsValid() {
		b.AddWithData(errors.ErrInvalidLogLevel.BagCode(),
			errors.GetErrorMessage(errors.ErrInvalidLogLevel)+": "+string(c.LogLevel),
			string(c.LogLevel))
	}

	if !c.LogFormat.IsValid() {
		b.AddWithData(errors.ErrInvalidLogFormat.BagCode(),
			errors.GetErrorMessage(errors.ErrInvalidLogFormat)+": "+string(c.LogFormat),
			string(c.LogFormat))
	}

	return b
}
