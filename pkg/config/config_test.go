package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

schedule:
  poll_interval: 10m
  max_workers: 3

feed:
  base_url: https://feeds.example.com/videos.xml
  user_agent: test-agent

summary:
  provider: agent
  agent:
    endpoint: https://agent.example.com/invoke
    stream_format: events

email:
  host: smtp.example.com
  port: 2525
  username: mailer
  password: secret
  from: briefly@example.com
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Minute, cfg.Schedule.PollInterval)
		assert.Equal(t, 3, cfg.Schedule.MaxWorkers)
		assert.Equal(t, "https://feeds.example.com/videos.xml", cfg.Feed.BaseURL)
		assert.Equal(t, "test-agent", cfg.Feed.UserAgent)
		assert.Equal(t, "agent", cfg.Summary.Provider)
		assert.Equal(t, "https://agent.example.com/invoke", cfg.Summary.Agent.Endpoint)
		assert.Equal(t, "events", cfg.Summary.Agent.StreamFormat)
		assert.Equal(t, "smtp.example.com", cfg.Email.Host)
		assert.Equal(t, 2525, cfg.Email.Port)
		assert.Equal(t, "briefly@example.com", cfg.Email.From)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
summary:
  agent:
    endpoint: https://agent.example.com/invoke

email:
  host: smtp.example.com
  from: briefly@example.com
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 15*time.Minute, cfg.Schedule.PollInterval)
		assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
		assert.Equal(t, "https://www.youtube.com/feeds/videos.xml", cfg.Feed.BaseURL)
		assert.Equal(t, "Briefly/1.0", cfg.Feed.UserAgent)
		assert.Equal(t, "agent", cfg.Summary.Provider)
		assert.Equal(t, "raw", cfg.Summary.Agent.StreamFormat)
		assert.Equal(t, 20*time.Minute, cfg.Summary.Agent.Timeout)
		assert.Equal(t, 587, cfg.Email.Port)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
		require.NotNil(t, cfg.Email.STARTTLS)
		assert.True(t, *cfg.Email.STARTTLS, "starttls is on unless explicitly disabled")
		require.NotNil(t, cfg.Summary.OpenAI.Temperature)
		assert.InDelta(t, 0.3, *cfg.Summary.OpenAI.Temperature, 0.001)
	})

	t.Run("explicit zero values survive defaulting", func(t *testing.T) {
		configContent := `
database:
  conn_max_lifetime: 90m

summary:
  provider: openai
  openai:
    model: gpt-4o-mini
    temperature: 0

email:
  host: smtp.example.com
  from: briefly@example.com
  starttls: false
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, 90*time.Minute, cfg.Database.ConnMaxLifetime)
		require.NotNil(t, cfg.Email.STARTTLS)
		assert.False(t, *cfg.Email.STARTTLS)
		require.NotNil(t, cfg.Summary.OpenAI.Temperature)
		assert.Zero(t, *cfg.Summary.OpenAI.Temperature, "explicit temperature 0 is not replaced by the default")
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_SMTP_PASSWORD", "from-env")
		configContent := `
summary:
  agent:
    endpoint: https://agent.example.com/invoke

email:
  host: smtp.example.com
  from: briefly@example.com
  password: ${TEST_SMTP_PASSWORD}
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Email.Password)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [not a map"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "agent provider without endpoint",
			content: `
email: {host: smtp.example.com, from: b@example.com}
`,
			errMsg: "summary.agent.endpoint is required",
		},
		{
			name: "bad stream format",
			content: `
summary:
  agent: {endpoint: "https://a", stream_format: chunked}
email: {host: smtp.example.com, from: b@example.com}
`,
			errMsg: "stream_format must be raw or events",
		},
		{
			name: "openai provider without model",
			content: `
summary:
  provider: openai
email: {host: smtp.example.com, from: b@example.com}
`,
			errMsg: "summary.openai.model is required",
		},
		{
			name: "openai temperature out of range",
			content: `
summary:
  provider: openai
  openai: {model: gpt-4o-mini, temperature: 3.5}
email: {host: smtp.example.com, from: b@example.com}
`,
			errMsg: "temperature must be between 0 and 2",
		},
		{
			name: "unknown provider",
			content: `
summary:
  provider: carrier-pigeon
email: {host: smtp.example.com, from: b@example.com}
`,
			errMsg: "summary.provider must be agent or openai",
		},
		{
			name: "missing email host",
			content: `
summary:
  agent: {endpoint: "https://a"}
email: {from: b@example.com}
`,
			errMsg: "email.host is required",
		},
		{
			name: "missing email from",
			content: `
summary:
  agent: {endpoint: "https://a"}
email: {host: smtp.example.com}
`,
			errMsg: "email.from is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	configContent := `
server: {listen: ":7070", timeout: 5s}
summary:
  agent: {endpoint: "https://a"}
email: {host: smtp.example.com, from: b@example.com}
`
	cfg, err := Load(writeConfig(t, configContent))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 5*time.Second, timeout)
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
