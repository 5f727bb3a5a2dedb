package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[cms]
url = "http://cms.local/api"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 300, cfg.CMS.CacheTTL)
	assert.Equal(t, "booking-requests", cfg.Kafka.Topic)
	assert.Equal(t, "UTC", cfg.Booking.DefaultTimezone)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "u"
password = "p"
dbname = "studio"

[kafka]
enabled = true
brokers = ["k1:9092", "k2:9092"]
topic = "events"

[cms]
url = "http://cms.local/api"
cache_ttl = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "events", cfg.Kafka.Topic)
	assert.Equal(t, 30, cfg.CMS.CacheTTL)
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=studio sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "secret-admin")
	t.Setenv("CMS_WEBHOOK_SECRET", "hook")
	t.Setenv("HTTP_PORT", "7070")

	path := writeConfig(t, `
[cms]
url = "http://cms.local/api"

[admin]
api_key = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret-admin", cfg.Admin.APIKey)
	assert.Equal(t, "hook", cfg.CMS.WebhookSecret)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing cms url", content: `[server]
http_port = 8080`},
		{name: "kafka without brokers", content: `[cms]
url = "http://cms"
[kafka]
enabled = true`},
		{name: "redis without addr", content: `[cms]
url = "http://cms"
[redis]
enabled = true`},
		{name: "negative rate limit requests", content: `[cms]
url = "http://cms"
[rate_limit]
enabled = true
requests = -1`},
		{name: "negative rate limit window", content: `[cms]
url = "http://cms"
[rate_limit]
enabled = true
window_seconds = -30`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NegativeRateLimitIgnoredWhenDisabled(t *testing.T) {
	path := writeConfig(t, `
[cms]
url = "http://cms"

[rate_limit]
enabled = false
requests = -1
`)

	_, err := Load(path)
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
