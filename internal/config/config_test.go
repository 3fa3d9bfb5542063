package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com/42"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
vendors:
  profitwell:
    api_key: "pw-test-key"
  atlassian:
    email: "ops@example.com"
    api_token: "atl-token"
    vendor_id: "1221976"
  mercury:
    api_key: "mercury-key"
rate_limiter:
  max_workers: 4
  providers:
    profitwell:
      rps: 2
      burst: 1
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com/42", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, "pw-test-key", cfg.Vendors.Profitwell.APIKey)
				assert.Equal(t, "ops@example.com", cfg.Vendors.Atlassian.Email)
				assert.Equal(t, "atl-token", cfg.Vendors.Atlassian.APIToken)
				assert.Equal(t, "1221976", cfg.Vendors.Atlassian.VendorID)
				assert.Equal(t, "mercury-key", cfg.Vendors.Mercury.APIKey)
				assert.Equal(t, 4, cfg.RateLimiter.MaxWorkers)
				assert.Equal(t, float64(2), cfg.RateLimiter.Providers["profitwell"].RPS)
			},
		},
		{
			name:       "defaults applied",
			configFile: "debug: false\n",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, "https://api.profitwell.com/v2", cfg.Vendors.Profitwell.APIURL)
				assert.Equal(t, "https://marketplace.atlassian.com/rest/2/vendors", cfg.Vendors.Atlassian.APIURL)
				assert.Equal(t, "https://api.mercury.com/api/v1", cfg.Vendors.Mercury.APIURL)
				assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
				assert.Equal(t, 6, cfg.Dashboard.DefaultMonths)
				assert.Equal(t, 3, cfg.Dashboard.BurnRateMonths)
			},
		},
		{
			name:        "malformed yaml",
			configFile:  "server: [not a map\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)
			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("FINSIGHT_SERVER_PORT", "7070")
	t.Setenv("FINSIGHT_VENDORS_PROFITWELL_API_KEY", "env-key")

	// Point at an empty directory so no config file is found and env vars win
	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-key", cfg.Vendors.Profitwell.APIKey)
}

func TestLoadReportConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, "debug: true\n")
	cfg, err := LoadReportConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 6, cfg.Dashboard.DefaultMonths)
	assert.Equal(t, 8, cfg.RateLimiter.MaxWorkers)
}
