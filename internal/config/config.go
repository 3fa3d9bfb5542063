package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// ProfitwellConfig holds the subscription-analytics vendor configuration
type ProfitwellConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// AtlassianConfig holds the marketplace-billing vendor configuration
type AtlassianConfig struct {
	APIURL   string `mapstructure:"api_url"`
	Email    string `mapstructure:"email"`
	APIToken string `mapstructure:"api_token"`
	VendorID string `mapstructure:"vendor_id"`
}

// MercuryConfig holds the banking vendor configuration
type MercuryConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// VendorsConfig holds vendor API configurations
type VendorsConfig struct {
	Profitwell ProfitwellConfig `mapstructure:"profitwell"`
	Atlassian  AtlassianConfig  `mapstructure:"atlassian"`
	Mercury    MercuryConfig    `mapstructure:"mercury"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// RateLimitConfig holds rate limiting settings for a single provider
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// RateLimiterConfig holds the local rate-limiter proxy configuration
type RateLimiterConfig struct {
	MaxWorkers int                        `mapstructure:"max_workers"`
	Providers  map[string]RateLimitConfig `mapstructure:"providers"`
}

// DashboardConfig holds dashboard-facing defaults
type DashboardConfig struct {
	DefaultMonths  int `mapstructure:"default_months"`
	BurnRateMonths int `mapstructure:"burn_rate_months"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Dashboard   DashboardConfig   `mapstructure:"dashboard"`
}

// ReportConfig holds configuration for the revenue-report CLI
type ReportConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Dashboard   DashboardConfig   `mapstructure:"dashboard"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setSharedDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadReportConfig loads configuration for the revenue-report CLI
func LoadReportConfig(configFile string, envPath string) (*ReportConfig, error) {
	v := configureViper("revenue-report", configFile, envPath)

	setSharedDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ReportConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setSharedDefaults sets defaults common to every binary
func setSharedDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("vendors.profitwell.api_url", "https://api.profitwell.com/v2")
	v.SetDefault("vendors.atlassian.api_url", "https://marketplace.atlassian.com/rest/2/vendors")
	v.SetDefault("vendors.mercury.api_url", "https://api.mercury.com/api/v1")
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("rate_limiter.max_workers", 8)
	v.SetDefault("dashboard.default_months", 6)
	v.SetDefault("dashboard.burn_rate_months", 3)
}

// readConfig reads the config file, tolerating a missing file so that
// environment-only deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Vendors
		"vendors.profitwell.api_url",
		"vendors.profitwell.api_key",
		"vendors.atlassian.api_url",
		"vendors.atlassian.email",
		"vendors.atlassian.api_token",
		"vendors.atlassian.vendor_id",
		"vendors.mercury.api_url",
		"vendors.mercury.api_key",
		// HTTP
		"http.timeout_seconds",
		// Rate limiter
		"rate_limiter.max_workers",
		// Dashboard
		"dashboard.default_months",
		"dashboard.burn_rate_months",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
