package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Provider ProviderConfig `mapstructure:"provider"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Policy   PolicyConfig   `mapstructure:"policy"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ProviderConfig is the environment-supplied upstream configuration.
// Every field can be overridden through PROVIDER_* environment variables;
// no credential is ever embedded in source.
type ProviderConfig struct {
	UseMock        bool          `mapstructure:"use_mock"`
	Name           string        `mapstructure:"name"`
	Key            string        `mapstructure:"key"`
	Model          string        `mapstructure:"model"`
	MaxRetries     int           `mapstructure:"max_retries"`
	Timeout        time.Duration `mapstructure:"timeout"`
	FallbackToMock bool          `mapstructure:"fallback_to_mock"`
}

// AnalyzerConfig carries the heuristic constants and lexicons of the
// detectors. The numeric defaults are the calibration the system shipped
// with; they are configuration so they can be tuned independently of
// detector code.
type AnalyzerConfig struct {
	MaxResponseLength int     `mapstructure:"max_response_length"`
	CoverageThreshold float64 `mapstructure:"coverage_threshold"`
	NegationWindow    int     `mapstructure:"negation_window"`
	YearGap           int     `mapstructure:"year_gap"`
	MagnitudeRatio    float64 `mapstructure:"magnitude_ratio"`

	CertaintyMarkers []string `mapstructure:"certainty_markers"`
	SensitiveTerms   []string `mapstructure:"sensitive_terms"`
	OpenTerms        []string `mapstructure:"open_terms"`
	ClosedTerms      []string `mapstructure:"closed_terms"`
	NegationMarkers  []string `mapstructure:"negation_markers"`
}

type PolicyConfig struct {
	Domains map[string]Thresholds `mapstructure:"domains"`
}

type Thresholds struct {
	Warn  int `mapstructure:"warn"`
	Block int `mapstructure:"block"`
}

type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

var globalConfig Config

func Load(configPath string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No file is fine; defaults plus environment variables apply.
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&globalConfig, decodeHook); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.port", 6379)

	v.SetDefault("provider.use_mock", true)
	v.SetDefault("provider.name", "openai")
	v.SetDefault("provider.key", "")
	v.SetDefault("provider.model", "gpt-4o-mini")
	v.SetDefault("provider.max_retries", 2)
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("provider.fallback_to_mock", true)

	v.SetDefault("analyzer.max_response_length", 100000)
	v.SetDefault("analyzer.coverage_threshold", 0.5)
	v.SetDefault("analyzer.negation_window", 50)
	v.SetDefault("analyzer.year_gap", 10)
	v.SetDefault("analyzer.magnitude_ratio", 10.0)

	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.path", "audit_log.jsonl")
}

func GetConfig() *Config {
	return &globalConfig
}
