package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"simfinclient/simfin"
)

// StatementConfig selects one statement to fetch.
type StatementConfig struct {
	CompanyID     int64  `mapstructure:"company_id"`
	StatementType string `mapstructure:"statement_type"`
	PeriodType    string `mapstructure:"period_type"`
	FiscalYear    int    `mapstructure:"fiscal_year"`
	Standardised  bool   `mapstructure:"standardised"`
}

// RatiosConfig selects the TTM ratios of one company.
type RatiosConfig struct {
	CompanyID  int64    `mapstructure:"company_id"`
	Indicators []string `mapstructure:"indicators"`
}

// Config holds all configuration for the simfin command.
type Config struct {
	// API access
	APIKey  string `mapstructure:"simfin_api_key"`
	BaseURL string `mapstructure:"simfin_base_url"`

	// Items to fetch
	Tickers    []string          `mapstructure:"tickers"`
	Names      []string          `mapstructure:"names"`
	CompanyIDs []int64           `mapstructure:"company_ids"`
	Statements []StatementConfig `mapstructure:"statements"`
	Ratios     []RatiosConfig    `mapstructure:"ratios"`

	// Execution
	Timeout           time.Duration `mapstructure:"timeout"`
	Concurrency       int           `mapstructure:"concurrency"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Output            string        `mapstructure:"output"`
	LogLevel          slog.Level    `mapstructure:"log_level"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// Fs is the filesystem config files are read from. Defaults to the OS filesystem.
	Fs afero.Fs
	// ConfigFile is an explicit config file path. When set the file must exist.
	ConfigFile string
	// Flags, when set, are bound over environment and file values.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"base-url":    "simfin_base_url",
	"output":      "output",
	"concurrency": "concurrency",
	"timeout":     "timeout",
	"log-level":   "log_level",
}

// Load reads configuration from environment variables and an optional
// config file in the working directory or $HOME/.simfin.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - SIMFIN_API_KEY
//   - SIMFIN_BASE_URL (optional, defaults to production)
//   - SIMFIN_TICKERS, SIMFIN_NAMES, SIMFIN_COMPANY_IDS (optional, comma separated)
//   - SIMFIN_TIMEOUT, SIMFIN_CONCURRENCY, SIMFIN_REQUESTS_PER_SECOND (optional)
//   - SIMFIN_OUTPUT (optional, json or yaml)
//   - SIMFIN_LOG_LEVEL (optional, debug, info, warn or error)
//
// Statements and ratios requests can only be given in the config file.
func Load() (*Config, error) {
	return LoadWithOptions(Options{})
}

// LoadWithOptions is Load with an explicit filesystem, config file and flags.
func LoadWithOptions(opts Options) (*Config, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	v.SetDefault("simfin_base_url", simfin.DefaultBaseURL)
	v.SetDefault("timeout", "30s")
	v.SetDefault("concurrency", 4)
	v.SetDefault("requests_per_second", 0)
	v.SetDefault("output", "json")
	v.SetDefault("log_level", "info")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.simfin")

		// A missing file is fine, a broken one is not
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.BindEnv("simfin_api_key", "SIMFIN_API_KEY")
	v.BindEnv("simfin_base_url", "SIMFIN_BASE_URL")
	v.BindEnv("tickers", "SIMFIN_TICKERS")
	v.BindEnv("names", "SIMFIN_NAMES")
	v.BindEnv("company_ids", "SIMFIN_COMPANY_IDS")
	v.BindEnv("timeout", "SIMFIN_TIMEOUT")
	v.BindEnv("concurrency", "SIMFIN_CONCURRENCY")
	v.BindEnv("requests_per_second", "SIMFIN_REQUESTS_PER_SECOND")
	v.BindEnv("output", "SIMFIN_OUTPUT")
	v.BindEnv("log_level", "SIMFIN_LOG_LEVEL")

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	config := &Config{}
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToWeakSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := v.Unmarshal(config, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Tickers = trimAll(config.Tickers)
	config.Names = trimAll(config.Names)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing required configuration: SIMFIN_API_KEY")
	}

	var problems []string
	if c.BaseURL == "" {
		problems = append(problems, "simfin_base_url must not be empty")
	}
	if c.Concurrency < 1 {
		problems = append(problems, fmt.Sprintf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.RequestsPerSecond < 0 {
		problems = append(problems, fmt.Sprintf("requests_per_second must not be negative, got %g", c.RequestsPerSecond))
	}
	if c.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Output != "json" && c.Output != "yaml" {
		problems = append(problems, fmt.Sprintf("output must be json or yaml, got %q", c.Output))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// StatementRequest converts s into a client request.
func (s StatementConfig) StatementRequest() simfin.StatementRequest {
	return simfin.StatementRequest{
		CompanyID:     s.CompanyID,
		StatementType: s.StatementType,
		PeriodType:    s.PeriodType,
		FiscalYear:    s.FiscalYear,
		Standardised:  s.Standardised,
	}
}

func trimAll(items []string) []string {
	out := items[:0]
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
