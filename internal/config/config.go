package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Recognized configuration keys. Key names match the original config file
// format, so existing podcast config files keep working unchanged.
const (
	KeyFeedURL      = "feed_URL"
	KeyOutputDir    = "output_dir"
	KeyThemeDir     = "theme_dir"
	KeyTemplatesDir = "templates_dir"
)

// DefaultTemplatesDir is where structural templates (sitemap) live when
// the config file does not say otherwise.
const DefaultTemplatesDir = "templates"

// Config holds one run's configuration.
//
// The recognized keys are promoted to typed fields; every key from the
// file, recognized or not, is also retained in Extra so templates can
// reference site-specific values (base URL, analytics IDs, ...) without
// the core knowing about them.
//
// Config is loaded once and read-only afterwards.
//
// Example config file:
//
//	{
//	    "feed_URL": "https://example.com/feed.xml",
//	    "output_dir": "/var/www/podcast",
//	    "theme_dir": "themes/plain",
//	    "base_URL": "https://podcast.example.com"
//	}
type Config struct {
	// FeedURL is the podcast RSS feed to fetch.
	FeedURL string

	// OutputDir is the directory the site is written into.
	OutputDir string

	// ThemeDir is the directory holding the themeable templates
	// (frontpage.html, episode.html).
	ThemeDir string

	// TemplatesDir is the directory holding structural templates
	// (sitemap.xml). Defaults to "templates".
	TemplatesDir string

	// Extra holds every key from the config file, recognized or not.
	// It is exposed to templates as the "config" context value.
	Extra map[string]any
}

// Load reads a JSON config file.
//
// Load fails if the file does not exist or is not valid JSON. It applies
// no defaults beyond TemplatesDir and performs no key validation: missing
// keys surface as errors later, when the stage that needs them runs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := &Config{
		FeedURL:      stringKey(raw, KeyFeedURL),
		OutputDir:    stringKey(raw, KeyOutputDir),
		ThemeDir:     stringKey(raw, KeyThemeDir),
		TemplatesDir: stringKey(raw, KeyTemplatesDir),
		Extra:        raw,
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = DefaultTemplatesDir
	}

	return cfg, nil
}

// Validate checks that the keys required by the pipeline are present.
//
// Called by the site builder before the first network request, so a
// missing key fails fast instead of half way through a run.
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("config: %s is not set", KeyFeedURL)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: %s is not set", KeyOutputDir)
	}
	if c.ThemeDir == "" {
		return fmt.Errorf("config: %s is not set", KeyThemeDir)
	}
	return nil
}

// TemplateContext returns the value templates see as "config".
func (c *Config) TemplateContext() map[string]any {
	return c.Extra
}

func stringKey(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
