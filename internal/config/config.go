// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config file, then LEDGER_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ingest struct {
		HeaderScanRows int `mapstructure:"header_scan_rows" yaml:"header_scan_rows"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Categories struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categories" yaml:"categories"`

	Scoring struct {
		IdealShares        map[string]float64 `mapstructure:"ideal_shares" yaml:"ideal_shares"`
		SeverityWeight     float64            `mapstructure:"severity_weight" yaml:"severity_weight"`
		OverspendTolerance float64            `mapstructure:"overspend_tolerance" yaml:"overspend_tolerance"`
		MaxRecommendations int                `mapstructure:"max_recommendations" yaml:"max_recommendations"`
	} `mapstructure:"scoring" yaml:"scoring"`

	Suspicion struct {
		AmountWeight    float64 `mapstructure:"amount_weight" yaml:"amount_weight"`
		TextWeight      float64 `mapstructure:"text_weight" yaml:"text_weight"`
		HighThreshold   float64 `mapstructure:"high_threshold" yaml:"high_threshold"`
		MediumThreshold float64 `mapstructure:"medium_threshold" yaml:"medium_threshold"`
	} `mapstructure:"suspicion" yaml:"suspicion"`

	History struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"history" yaml:"history"`
}

// Load initializes the configuration with hierarchical resolution.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ledger-insights")
	v.AddConfigPath(".ledger-insights")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ingest.header_scan_rows", 10)

	v.SetDefault("categories.rules_file", "categories.yaml")

	v.SetDefault("scoring.severity_weight", 1.0)
	v.SetDefault("scoring.overspend_tolerance", 5.0)
	v.SetDefault("scoring.max_recommendations", 3)

	v.SetDefault("suspicion.amount_weight", 0.6)
	v.SetDefault("suspicion.text_weight", 0.4)
	v.SetDefault("suspicion.high_threshold", 0.8)
	v.SetDefault("suspicion.medium_threshold", 0.6)

	// Empty means persistence is off unless configured or passed by flag.
	v.SetDefault("history.file", "")
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}

	if cfg.Ingest.HeaderScanRows <= 0 {
		return fmt.Errorf("ingest.header_scan_rows must be positive")
	}

	if cfg.Suspicion.AmountWeight < 0 || cfg.Suspicion.TextWeight < 0 {
		return fmt.Errorf("suspicion weights must be non-negative")
	}
	if cfg.Suspicion.HighThreshold <= cfg.Suspicion.MediumThreshold {
		return fmt.Errorf("suspicion.high_threshold must be above suspicion.medium_threshold")
	}

	for cat, share := range cfg.Scoring.IdealShares {
		if share < 0 || share > 100 {
			return fmt.Errorf("scoring.ideal_shares[%s] must be within [0, 100]", cat)
		}
	}

	return nil
}
