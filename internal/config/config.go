package config

import (
	"flag"
	"os"

	"github.com/spf13/viper"

	"github.com/zonotope/battery/internal/errors"
)

const (
	DefaultLogLevel = "info"

	defaultInterval = 30 // seconds between polls

	// Noise ceilings for derived time estimates, in hours. Heuristics
	// inherited from upstream battery tooling; kept configurable because
	// no derivation for the "right" cutoff exists.
	defaultTimeToFullCeiling  = 10
	defaultTimeToEmptyCeiling = 240
)

// Config holds the batteryctl runtime configuration, merged from the TOML
// config file, environment and command-line flags.
type Config struct {
	Interval           int    `mapstructure:"interval"`
	Once               bool   `mapstructure:"once"`
	LogLevel           string `mapstructure:"log_level"`
	Telemetry          bool   `mapstructure:"telemetry"`
	TelemetryDB        string `mapstructure:"database"`
	TimeToFullCeiling  int    `mapstructure:"time_to_full_ceiling"`
	TimeToEmptyCeiling int    `mapstructure:"time_to_empty_ceiling"`
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

func init() {
	flag.Int("interval", defaultInterval, "Seconds between battery polls")
	flag.Bool("once", false, "Report a single snapshot and exit")
	flag.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flag.Bool("telemetry", false, "Record battery snapshots to the telemetry database")
	flag.String("database", "", "Path to the telemetry database")
}

// Load reads configuration from the config file, the BATTERYCTL_*
// environment and command-line flags, in increasing priority.
func Load() (*Config, error) {
	errFactory := errors.New()

	flag.Parse()

	v := viper.New()
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("once", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", "/var/lib/batteryctl/telemetry.db")
	v.SetDefault("time_to_full_ceiling", defaultTimeToFullCeiling)
	v.SetDefault("time_to_empty_ceiling", defaultTimeToEmptyCeiling)

	v.SetEnvPrefix("BATTERYCTL")
	v.AutomaticEnv()

	if path := os.Getenv("BATTERYCTL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("batteryctl")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.WithMessage(errors.ErrReadConfig, "Failed to read config file").WithData(err.Error())
		}
	}

	// Explicitly set flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			v.Set("log_level", f.Value.String())
		case "interval", "once", "telemetry", "database":
			v.Set(f.Name, f.Value.String())
		}
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the merged configuration for consistency.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.TimeToFullCeiling <= 0 || c.TimeToEmptyCeiling <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "time estimate ceilings must be positive")
	}

	if c.Telemetry && c.TelemetryDB == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "telemetry enabled without a database path")
	}

	return nil
}
