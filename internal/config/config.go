// Package config loads runtime settings from viper. Values come from
// .allyquest.yaml, ALLYQUEST_* env vars (with .env support) and CLI flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. ALLYQUEST_STORAGE_BACKEND.
const EnvPrefix = "ALLYQUEST"

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// LogConfig controls the log file. An empty path uses logging.DefaultPath.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// TimingConfig holds the fixed UI delays.
type TimingConfig struct {
	PronounFeedback  time.Duration `mapstructure:"pronoun_feedback"`
	LanguageFeedback time.Duration `mapstructure:"language_feedback"`
	ScenarioFeedback time.Duration `mapstructure:"scenario_feedback"`
	ActionFeedback   time.Duration `mapstructure:"action_feedback"`
	Result           time.Duration `mapstructure:"result"`
	ActionResult     time.Duration `mapstructure:"action_result"`
	ReturnToMap      time.Duration `mapstructure:"return_to_map"`
	Splash           time.Duration `mapstructure:"splash"`
}

// Config holds all runtime configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Verbose bool          `mapstructure:"verbose"`
	Timing  TimingConfig  `mapstructure:"timing"`
}

// DefaultTiming returns the stock delays.
func DefaultTiming() TimingConfig {
	return TimingConfig{
		PronounFeedback:  time.Second,
		LanguageFeedback: 2 * time.Second,
		ScenarioFeedback: 3 * time.Second,
		ActionFeedback:   1500 * time.Millisecond,
		Result:           2 * time.Second,
		ActionResult:     1500 * time.Millisecond,
		ReturnToMap:      1500 * time.Millisecond,
		Splash:           2 * time.Second,
	}
}

// BindEnv maps ALLYQUEST_* variables onto nested keys.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	t := DefaultTiming()
	viper.SetDefault("storage.backend", "sqlite")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("log.path", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("timing.pronoun_feedback", t.PronounFeedback)
	viper.SetDefault("timing.language_feedback", t.LanguageFeedback)
	viper.SetDefault("timing.scenario_feedback", t.ScenarioFeedback)
	viper.SetDefault("timing.action_feedback", t.ActionFeedback)
	viper.SetDefault("timing.result", t.Result)
	viper.SetDefault("timing.action_result", t.ActionResult)
	viper.SetDefault("timing.return_to_map", t.ReturnToMap)
	viper.SetDefault("timing.splash", t.Splash)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and negative delays.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "dir", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q (want sqlite, dir or memory)", c.Storage.Backend)
	}
	for name, d := range map[string]time.Duration{
		"pronoun_feedback":  c.Timing.PronounFeedback,
		"language_feedback": c.Timing.LanguageFeedback,
		"scenario_feedback": c.Timing.ScenarioFeedback,
		"action_feedback":   c.Timing.ActionFeedback,
		"result":            c.Timing.Result,
		"action_result":     c.Timing.ActionResult,
		"return_to_map":     c.Timing.ReturnToMap,
		"splash":            c.Timing.Splash,
	} {
		if d < 0 {
			return fmt.Errorf("timing.%s must not be negative", name)
		}
	}
	return nil
}
