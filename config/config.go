package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// SearchConfig tunes the live search behaviour.
type SearchConfig struct {
	DebounceMs     int `json:"debounceMs" env:"DEBOUNCE_MS"`
	MinQueryLength int `json:"minQueryLength" env:"MIN_QUERY_LENGTH"`
}

// ContactConfig toggles the contact form and throttles submissions.
type ContactConfig struct {
	Enabled bool `json:"enabled" env:"ENABLED"`
	// RatePerMinute caps submissions per client address.
	RatePerMinute int `json:"ratePerMinute" env:"RATE_PER_MINUTE"`
}

// Config encapsulates runtime and build-time options.
type Config struct {
	Live           bool          `json:"live" env:"CATALOG_LIVE"`
	Listen         string        `json:"listen" env:"CATALOG_LISTEN"`
	OutputDir      string        `json:"outputDir" env:"CATALOG_OUTPUT_DIR"`
	TemplateDir    string        `json:"templateDir" env:"CATALOG_TEMPLATE_DIR"`
	CatalogPath    string        `json:"catalogPath" env:"CATALOG_PATH"`
	AssetDir       string        `json:"assetDir" env:"CATALOG_ASSET_DIR"`
	BaseURL        string        `json:"baseUrl" env:"CATALOG_BASE_URL"`
	SiteName       string        `json:"siteName" env:"CATALOG_SITE_NAME"`
	ServerFooter   string        `json:"serverFooter" env:"CATALOG_SERVER_FOOTER"`
	EnableTLS      bool          `json:"enableTLS" env:"CATALOG_ENABLE_TLS"`
	TLSCert        string        `json:"tlsCert" env:"CATALOG_TLS_CERT"`
	TLSKey         string        `json:"tlsKey" env:"CATALOG_TLS_KEY"`
	LogLevel       string        `json:"logLevel" env:"CATALOG_LOG_LEVEL"`
	Search         SearchConfig  `json:"search" env-prefix:"CATALOG_SEARCH_"`
	Contact        ContactConfig `json:"contact" env-prefix:"CATALOG_CONTACT_"`
	DebounceWindow time.Duration `json:"-"`
}

// Load reads configuration from a JSON file, applies environment overrides
// and fills in defaults. An empty path loads from the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{Contact: ContactConfig{Enabled: true}}

	path = strings.TrimSpace(path)
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(filepath.Clean(path)); err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		if err := cleanenv.ReadConfig(filepath.Clean(path), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./dist"
	}
	c.TemplateDir = strings.TrimSpace(c.TemplateDir)
	c.CatalogPath = strings.TrimSpace(c.CatalogPath)
	c.AssetDir = strings.TrimSpace(c.AssetDir)

	c.SiteName = strings.TrimSpace(c.SiteName)
	if c.SiteName == "" {
		c.SiteName = "Game Downloads"
	}
	c.BaseURL = strings.TrimSpace(c.BaseURL)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Search.DebounceMs == 0 {
		c.Search.DebounceMs = 300
	}
	if c.Search.MinQueryLength == 0 {
		c.Search.MinQueryLength = 2
	}
	if c.Contact.RatePerMinute == 0 {
		c.Contact.RatePerMinute = 6
	}
	c.DebounceWindow = time.Duration(c.Search.DebounceMs) * time.Millisecond
	return nil
}

func (c *Config) validate() error {
	if c.Search.DebounceMs < 0 {
		return fmt.Errorf("negative search debounce")
	}
	if c.Search.MinQueryLength < 0 {
		return fmt.Errorf("negative minimum query length")
	}
	if c.Contact.RatePerMinute < 0 {
		return fmt.Errorf("negative contact rate")
	}
	if c.EnableTLS {
		if c.TLSCert == "" || c.TLSKey == "" {
			return fmt.Errorf("tls enabled but certificates missing")
		}
	}
	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			return fmt.Errorf("invalid baseUrl: %w", err)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	return nil
}

// BasePath returns the URL path prefix the site is served under, always
// starting and ending with a slash.
func (c *Config) BasePath() string {
	trimmed := strings.Trim(c.BaseURL, "/")
	if parsed, err := url.Parse(c.BaseURL); err == nil && parsed.Host != "" {
		trimmed = strings.Trim(parsed.Path, "/")
	}
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}
