package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wikiwalk"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .wikiwalk configuration file.
// All fields are optional; absent fields keep their defaults.
//
// Example:
//
//	site:
//	  domain: wikipedia.org
//	  base_url: https://en.wikipedia.org
//	  article_prefix: /wiki/
//	timeout: 10s
//	fanout: 10
//	workers: 4
type File struct {
	// Site overrides the crawled site description.
	Site *Site `yaml:"site,omitempty"`

	// Timeout overrides the per-request fetch timeout.
	Timeout Duration `yaml:"timeout,omitempty"`

	// FanOut overrides the per-page link cap.
	FanOut int `yaml:"fanout,omitempty"`

	// Workers overrides the per-level concurrent fetch count.
	Workers int `yaml:"workers,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`
}

// LoadConfigFile loads crawl settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply merges the file values into the config. Only fields set in the file
// override the existing values, so flag defaults survive an empty file.
func (cf *File) Apply(c *Config) {
	if cf.Site != nil {
		if cf.Site.Domain != "" {
			c.Site.Domain = cf.Site.Domain
		}
		if cf.Site.BaseURL != "" {
			c.Site.BaseURL = cf.Site.BaseURL
		}
		if cf.Site.ArticlePrefix != "" {
			c.Site.ArticlePrefix = cf.Site.ArticlePrefix
		}
	}
	if !cf.Timeout.IsZero() {
		c.Timeout = cf.Timeout.Duration
	}
	if cf.FanOut > 0 {
		c.FanOut = cf.FanOut
	}
	if cf.Workers > 0 {
		c.Workers = cf.Workers
	}
	if cf.UserAgent != "" {
		c.UserAgent = cf.UserAgent
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .wikiwalk in the current directory
//  3. config.yml in the XDG config directory
//  4. .wikiwalk in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
