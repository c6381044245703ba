package telexide

import (
	"fmt"
	"net/url"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// tokenPattern matches the bot token format: <digits>:<alphanum+dash>.
var tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

// Config holds the bot configuration.
type Config struct {
	Token          string   `yaml:"token"`
	APIURL         string   `yaml:"api_url"`
	Mode           string   `yaml:"mode"`
	PollingTimeout int      `yaml:"polling_timeout"`
	AllowedUpdates []string `yaml:"allowed_updates"`
	WebhookURL     string   `yaml:"webhook_url"`
	WebhookListen  string   `yaml:"webhook_listen"`
	WebhookSecret  string   `yaml:"webhook_secret"`

	// OffsetPath is the SQLite file used to persist the polling offset
	// across restarts. Empty disables persistence.
	OffsetPath string `yaml:"offset_path"`
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("telexide: read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("telexide: decode config %s: %w", path, err)
	}
	return &cfg, nil
}

// defaults applies default values to unset fields.
func (c *Config) defaults() {
	if c.Mode == "" {
		c.Mode = "polling"
	}
	if c.PollingTimeout == 0 {
		c.PollingTimeout = 30
	}
	if c.APIURL == "" {
		c.APIURL = "https://api.telegram.org"
	}
	if c.WebhookListen == "" {
		c.WebhookListen = ":8443"
	}
}

// validate checks configuration constraints. Called after defaults.
func (c *Config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("telexide: token is required")
	}
	if !tokenPattern.MatchString(c.Token) {
		return fmt.Errorf("telexide: token format invalid (expected <bot_id>:<hash>)")
	}

	switch c.Mode {
	case "polling", "webhook":
	default:
		return fmt.Errorf("telexide: invalid mode %q (must be \"polling\" or \"webhook\")", c.Mode)
	}

	if c.Mode == "webhook" {
		if c.WebhookURL == "" {
			return fmt.Errorf("telexide: webhook_url is required when mode is \"webhook\"")
		}
		if u, err := url.Parse(c.WebhookURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("telexide: webhook_url must be a valid http/https URL, got %q", c.WebhookURL)
		}
	}

	if u, err := url.Parse(c.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("telexide: api_url must be a valid http/https URL, got %q", c.APIURL)
	}

	if c.PollingTimeout < 0 || c.PollingTimeout > 50 {
		return fmt.Errorf("telexide: polling_timeout must be 0-50, got %d", c.PollingTimeout)
	}

	return nil
}
