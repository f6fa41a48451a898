// Package config loads and validates the application configuration from a
// YAML file with environment variable expansion.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:briefly.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=15m,description=Channel poll interval"`
		MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent channel workers"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Poller configuration"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Channel feed source configuration"`

	Summary SummaryConfig `yaml:"summary" json:"summary" jsonschema:"description=Generation backend configuration"`

	Email EmailConfig `yaml:"email" json:"email" jsonschema:"description=SMTP transport configuration"`
}

// FeedConfig holds the channel feed source settings
type FeedConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://www.youtube.com/feeds/videos.xml,description=Feed endpoint without the channel_id parameter"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Briefly/1.0,description=User agent for feed requests"`
}

// SummaryConfig selects and configures the generation backend
type SummaryConfig struct {
	Provider string       `yaml:"provider" json:"provider" jsonschema:"default=agent,enum=agent,enum=openai,description=Which generation backend to use"`
	Agent    AgentConfig  `yaml:"agent" json:"agent" jsonschema:"description=Agent runtime backend"`
	OpenAI   OpenAIConfig `yaml:"openai" json:"openai" jsonschema:"description=OpenAI-compatible backend"`
}

// AgentConfig holds agent runtime backend settings
type AgentConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Agent runtime invocation URL"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20m,description=Invocation timeout, generation can be slow"`
	StreamFormat string        `yaml:"stream_format" json:"stream_format" jsonschema:"default=raw,enum=raw,enum=events,description=Response framing: raw text lines or structured SSE events"`
}

// OpenAIConfig holds OpenAI-compatible backend settings
type OpenAIConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini)"`
	Temperature  *float32      `yaml:"temperature" json:"temperature,omitempty" jsonschema:"default=0.3,description=Temperature for response generation, explicit 0 is honored"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// EmailConfig holds SMTP transport settings
type EmailConfig struct {
	Host     string        `yaml:"host" json:"host" jsonschema:"description=SMTP host"`
	Port     int           `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port"`
	Username string        `yaml:"username" json:"username" jsonschema:"description=SMTP user"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
	STARTTLS *bool         `yaml:"starttls" json:"starttls,omitempty" jsonschema:"default=true,description=Use STARTTLS, explicit false disables it"`
	From     string        `yaml:"from" json:"from" jsonschema:"description=Sender address for all notifications"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=SMTP dial and send timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:briefly.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = time.Hour
	}

	// set defaults for schedule
	if cfg.Schedule.PollInterval == 0 {
		cfg.Schedule.PollInterval = 15 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for feed source
	if cfg.Feed.BaseURL == "" {
		cfg.Feed.BaseURL = "https://www.youtube.com/feeds/videos.xml"
	}
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 30 * time.Second
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "Briefly/1.0"
	}

	// set defaults for summary backends
	if cfg.Summary.Provider == "" {
		cfg.Summary.Provider = "agent"
	}
	if cfg.Summary.Agent.Timeout == 0 {
		cfg.Summary.Agent.Timeout = 20 * time.Minute
	}
	if cfg.Summary.Agent.StreamFormat == "" {
		cfg.Summary.Agent.StreamFormat = "raw"
	}
	if cfg.Summary.OpenAI.Temperature == nil {
		// nil means the key was omitted; an explicit 0 stays 0
		temperature := float32(0.3)
		cfg.Summary.OpenAI.Temperature = &temperature
	}
	if cfg.Summary.OpenAI.MaxTokens == 0 {
		cfg.Summary.OpenAI.MaxTokens = 1000
	}
	if cfg.Summary.OpenAI.Timeout == 0 {
		cfg.Summary.OpenAI.Timeout = 2 * time.Minute
	}

	// set defaults for email
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	if cfg.Email.STARTTLS == nil {
		// secure by default, an omitted key means STARTTLS on
		startTLS := true
		cfg.Email.STARTTLS = &startTLS
	}
	if cfg.Email.Timeout == 0 {
		cfg.Email.Timeout = 30 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	switch cfg.Summary.Provider {
	case "agent":
		if cfg.Summary.Agent.Endpoint == "" {
			return fmt.Errorf("summary.agent.endpoint is required for the agent provider")
		}
		if cfg.Summary.Agent.StreamFormat != "raw" && cfg.Summary.Agent.StreamFormat != "events" {
			return fmt.Errorf("summary.agent.stream_format must be raw or events")
		}
	case "openai":
		if cfg.Summary.OpenAI.Model == "" {
			return fmt.Errorf("summary.openai.model is required for the openai provider")
		}
		if cfg.Summary.OpenAI.Temperature != nil && (*cfg.Summary.OpenAI.Temperature < 0 || *cfg.Summary.OpenAI.Temperature > 2) {
			return fmt.Errorf("summary.openai.temperature must be between 0 and 2")
		}
	default:
		return fmt.Errorf("summary.provider must be agent or openai, got %q", cfg.Summary.Provider)
	}

	if cfg.Email.Host == "" {
		return fmt.Errorf("email.host is required")
	}
	if cfg.Email.From == "" {
		return fmt.Errorf("email.from is required")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
