package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Muhurat planner specifics
	SunTimes SunTimesConfig
	Advisory AdvisoryConfig
	Planner  PlannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SunTimesConfig points at the external sunrise/sunset provider.
type SunTimesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AdvisoryConfig points at the optional explanation service. When disabled
// the planner falls back to its built-in rationales.
type AdvisoryConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

// PlannerConfig tunes the planning use case.
type PlannerConfig struct {
	BudgetMs        int
	CacheCapacity   int
	CacheTTLDays    int
	RateLimitPerMin int
	DefaultTimezone string
}

// Budget converts the configured millisecond budget to a duration.
func (c PlannerConfig) Budget() time.Duration {
	return time.Duration(c.BudgetMs) * time.Millisecond
}

// CacheTTL converts the configured day count to a duration.
func (c PlannerConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sun times provider
	cfg.SunTimes.BaseURL = viper.GetString("sun_times.base_url")
	cfg.SunTimes.Timeout = viper.GetDuration("sun_times.timeout")
	if baseURL := viper.GetString("sun_times_base_url"); baseURL != "" {
		cfg.SunTimes.BaseURL = baseURL
	}
	if cfg.SunTimes.BaseURL == "" {
		return nil, fmt.Errorf("sun_times.base_url is required")
	}

	// Advisory service
	cfg.Advisory.Enabled = viper.GetBool("advisory.enabled")
	cfg.Advisory.BaseURL = viper.GetString("advisory.base_url")
	cfg.Advisory.Timeout = viper.GetDuration("advisory.timeout")
	if baseURL := viper.GetString("advisory_base_url"); baseURL != "" {
		cfg.Advisory.BaseURL = baseURL
	}
	if cfg.Advisory.Enabled && cfg.Advisory.BaseURL == "" {
		return nil, fmt.Errorf("advisory.base_url is required when advisory is enabled")
	}

	// Planner tuning
	cfg.Planner.BudgetMs = viper.GetInt("planner.budget_ms")
	cfg.Planner.CacheCapacity = viper.GetInt("planner.cache_capacity")
	cfg.Planner.CacheTTLDays = viper.GetInt("planner.cache_ttl_days")
	cfg.Planner.RateLimitPerMin = viper.GetInt("planner.rate_limit_per_min")
	cfg.Planner.DefaultTimezone = viper.GetString("planner.default_timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sun_times.base_url", "https://api.sunrisesunset.io")
	viper.SetDefault("sun_times.timeout", "10s")

	viper.SetDefault("advisory.enabled", false)
	viper.SetDefault("advisory.timeout", "3s")

	viper.SetDefault("planner.budget_ms", 5000)
	viper.SetDefault("planner.cache_capacity", 4096)
	viper.SetDefault("planner.cache_ttl_days", 30)
	viper.SetDefault("planner.rate_limit_per_min", 120)
	viper.SetDefault("planner.default_timezone", "Asia/Kolkata")
}
